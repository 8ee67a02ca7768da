package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
	}

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"widget"}`))
		var p payload
		require.NoError(t, DecodeJSON(r, &p))
		assert.Equal(t, "widget", p.Name)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		var p payload
		assert.Error(t, DecodeJSON(r, &p))
	})
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	type input struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required,min=2"`
		Size  int    `validate:"gte=0"`
	}

	t.Run("valid input returns nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, ValidateRequest(input{Email: "a@b.com", Name: "ok", Size: 1}))
	})

	t.Run("one message per violated rule", func(t *testing.T) {
		t.Parallel()

		msgs := ValidateRequest(input{Email: "not-an-email", Name: "", Size: -1})
		require.Len(t, msgs, 3)
		assert.Contains(t, msgs[0], "must be a valid email address")
		assert.Contains(t, msgs[1], "is required")
		assert.Contains(t, msgs[2], "must be at least")
	})
}

func TestParsePageParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		wantNumber int
		wantSize   int
	}{
		{name: "defaults when absent", query: "", wantNumber: 1, wantSize: 20},
		{name: "explicit values", query: "?pageNumber=3&pageSize=50", wantNumber: 3, wantSize: 50},
		{name: "oversized clamps", query: "?pageSize=500", wantNumber: 1, wantSize: 100},
		{name: "zero page becomes first", query: "?pageNumber=0", wantNumber: 1, wantSize: 20},
		{name: "garbage falls back to defaults", query: "?pageNumber=abc&pageSize=xyz", wantNumber: 1, wantSize: 20},
		{name: "negative size falls back to default", query: "?pageSize=-1", wantNumber: 1, wantSize: 20},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/products"+tt.query, nil)
			page := ParsePageParams(r, 20, 100)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, tt.wantSize, page.Size)
		})
	}
}
