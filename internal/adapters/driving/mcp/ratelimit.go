package mcp

import (
	"net/http"

	"golang.org/x/time/rate"
)

// HTTP transport rate limits. Searches are in-memory and cheap; the
// limiter mainly guards against runaway clients hammering the session
// endpoint.
const (
	requestsPerSecond = 25
	burstSize         = 50
)

// rateLimited wraps an HTTP handler with a global token-bucket limiter.
// Over-limit requests receive 429 rather than queueing.
func rateLimited(next http.Handler) http.Handler {
	limiter := rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
