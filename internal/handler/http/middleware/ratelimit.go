package middleware

import (
	"net/http"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit limits requests per client IP with an in-memory store. The
// rate uses limiter's formatted syntax, e.g. "10-M" for 10 per minute.
// Auth routes sit behind it to slow down credential guessing.
func RateLimit(formatted string) func(http.Handler) http.Handler {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		panic("invalid rate limit format: " + formatted)
	}

	instance := limiter.New(memory.NewStore(), rate, limiter.WithTrustForwardHeader(true))
	middleware := stdlib.NewMiddleware(instance, stdlib.WithLimitReachedHandler(limitReached))

	return middleware.Handler
}

func limitReached(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_, _ = w.Write([]byte(`{"success":false,"error":{"code":"RATE_LIMITED","message":"Too many requests, slow down"}}`))
}
