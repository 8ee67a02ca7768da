package shared

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOK(t *testing.T) {
	t.Parallel()

	env := OK("product retrieved", "payload")

	assert.True(t, env.Success)
	assert.Equal(t, "product retrieved", env.Message)
	require.NotNil(t, env.Data)
	assert.Equal(t, "payload", *env.Data)
	assert.Empty(t, env.Errors)
	assert.Equal(t, KindNone, env.Kind)
}

func TestFail(t *testing.T) {
	t.Parallel()

	env := Fail[string](KindValidation, "validation failed", "name is required", "sku is required")

	assert.False(t, env.Success)
	assert.Nil(t, env.Data)
	assert.Equal(t, []string{"name is required", "sku is required"}, env.Errors)
	assert.Equal(t, KindValidation, env.Kind)
}

func TestFailWithoutReasons(t *testing.T) {
	t.Parallel()

	env := Fail[string](KindUnexpected, "an unexpected failure occurred")

	require.NotNil(t, env.Errors)
	assert.Empty(t, env.Errors)
}

func TestEnvelopeJSONShape(t *testing.T) {
	t.Parallel()

	t.Run("failure serializes data as null and hides kind", func(t *testing.T) {
		t.Parallel()

		raw, err := json.Marshal(Fail[string](KindNotFound, "resource not found", "resource not found"))
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &decoded))

		assert.Equal(t, false, decoded["success"])
		assert.Nil(t, decoded["data"])
		assert.NotContains(t, decoded, "kind")
		assert.NotContains(t, decoded, "Kind")
	})

	t.Run("success serializes empty errors as array", func(t *testing.T) {
		t.Parallel()

		raw, err := json.Marshal(OK("ok", 42))
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"errors":[]`)
	})
}

func TestNormalizePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		number     int
		size       int
		wantNumber int
		wantSize   int
	}{
		{name: "in range", number: 2, size: 10, wantNumber: 2, wantSize: 10},
		{name: "zero number becomes first page", number: 0, size: 10, wantNumber: 1, wantSize: 10},
		{name: "negative number becomes first page", number: -3, size: 10, wantNumber: 1, wantSize: 10},
		{name: "zero size falls back to default", number: 1, size: 0, wantNumber: 1, wantSize: 20},
		{name: "negative size falls back to default", number: 1, size: -5, wantNumber: 1, wantSize: 20},
		{name: "oversized size clamps to max", number: 1, size: 5000, wantNumber: 1, wantSize: 100},
		{name: "size at max is kept", number: 1, size: 100, wantNumber: 1, wantSize: 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page := NormalizePage(tt.number, tt.size, 20, 100)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, tt.wantSize, page.Size)
		})
	}
}

func TestNewPageMetadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		pageNumber   int
		pageSize     int
		totalRecords int64
		wantPages    int
		wantPrevious bool
		wantNext     bool
	}{
		{
			name:         "middle page of uneven total",
			pageNumber:   2,
			pageSize:     10,
			totalRecords: 23,
			wantPages:    3,
			wantPrevious: true,
			wantNext:     true,
		},
		{
			name:         "last page",
			pageNumber:   3,
			pageSize:     10,
			totalRecords: 23,
			wantPages:    3,
			wantPrevious: true,
			wantNext:     false,
		},
		{
			name:         "first page",
			pageNumber:   1,
			pageSize:     10,
			totalRecords: 23,
			wantPages:    3,
			wantPrevious: false,
			wantNext:     true,
		},
		{
			name:         "exact multiple",
			pageNumber:   1,
			pageSize:     10,
			totalRecords: 30,
			wantPages:    3,
			wantPrevious: false,
			wantNext:     true,
		},
		{
			name:         "empty result set",
			pageNumber:   1,
			pageSize:     10,
			totalRecords: 0,
			wantPages:    0,
			wantPrevious: false,
			wantNext:     false,
		},
		{
			name:         "page past the end of empty set",
			pageNumber:   5,
			pageSize:     10,
			totalRecords: 0,
			wantPages:    0,
			wantPrevious: false,
			wantNext:     false,
		},
		{
			name:         "single record",
			pageNumber:   1,
			pageSize:     20,
			totalRecords: 1,
			wantPages:    1,
			wantPrevious: false,
			wantNext:     false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := NewPage("items retrieved", []int{1}, PageParams{Number: tt.pageNumber, Size: tt.pageSize}, tt.totalRecords)

			assert.True(t, env.Success)
			assert.Equal(t, tt.pageNumber, env.PageNumber)
			assert.Equal(t, tt.pageSize, env.PageSize)
			assert.Equal(t, tt.totalRecords, env.TotalRecords)
			assert.Equal(t, tt.wantPages, env.TotalPages)
			assert.Equal(t, tt.wantPrevious, env.HasPreviousPage)
			assert.Equal(t, tt.wantNext, env.HasNextPage)
		})
	}
}

func TestNewPageNilItems(t *testing.T) {
	t.Parallel()

	env := NewPage[int]("items retrieved", nil, PageParams{Number: 1, Size: 10}, 0)

	require.NotNil(t, env.Data)
	assert.Empty(t, env.Data)

	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":[]`)
}

func TestFailPage(t *testing.T) {
	t.Parallel()

	env := FailPage[int](KindUnexpected, "an unexpected failure occurred")

	assert.False(t, env.Success)
	assert.Nil(t, env.Data)
	assert.Zero(t, env.TotalPages)

	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"data":null`)
}
