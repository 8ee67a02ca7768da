package middleware

import (
	"net/http"
	"sync"

	"github.com/stockroomhq/stockroom-api/internal/api/shared"
	"golang.org/x/time/rate"
)

// RateLimiter throttles requests per remote address. It guards the
// public auth endpoints against credential stuffing; a zero
// requests-per-second configuration disables it.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

// NewRateLimiter creates a new RateLimiter.
func NewRateLimiter(requestsPerSecond, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Bound the map; per-address limiters are cheap to rebuild.
	if len(rl.limiters) > 10000 {
		rl.limiters = make(map[string]*rate.Limiter)
	}

	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// Handler returns the rate limiting middleware handler.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	if rl.rate <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.getLimiter(r.RemoteAddr).Allow() {
			env := shared.Fail[struct{}](shared.KindValidation, "too many requests", "rate limit exceeded")
			// 429 is outside the envelope kind mapping; write it directly.
			shared.RespondWithJSON(w, r, http.StatusTooManyRequests, env)
			return
		}
		next.ServeHTTP(w, r)
	})
}
