package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	t.Parallel()

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("throttles a single address past its burst", func(t *testing.T) {
		t.Parallel()

		rl := NewRateLimiter(1, 2)
		handler := rl.Handler(okHandler)

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
			req.RemoteAddr = "203.0.113.9:1234"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			codes = append(codes, rec.Code)
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("addresses are limited independently", func(t *testing.T) {
		t.Parallel()

		rl := NewRateLimiter(1, 1)
		handler := rl.Handler(okHandler)

		first := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		first.RemoteAddr = "203.0.113.1:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, first)
		assert.Equal(t, http.StatusOK, rec.Code)

		exhausted := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		exhausted.RemoteAddr = "203.0.113.1:1234"
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, exhausted)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)

		other := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		other.RemoteAddr = "203.0.113.2:1234"
		rec = httptest.NewRecorder()
		handler.ServeHTTP(rec, other)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("zero rate disables limiting", func(t *testing.T) {
		t.Parallel()

		rl := NewRateLimiter(0, 0)
		handler := rl.Handler(okHandler)

		for i := 0; i < 10; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
			req.RemoteAddr = "203.0.113.3:1234"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
		}
	})
}
