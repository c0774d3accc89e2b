package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/sbilibin2017/gw-apartment-listings/internal/logger"
)

// RateLimitMiddleware allows requestLimit requests per window for each
// client IP. Rejected requests get 429.
func RateLimitMiddleware(requestLimit int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(
		requestLimit,
		window,
		httprate.WithKeyFuncs(httprate.KeyByRealIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.Log.Warnw("rate limit exceeded", "remote", r.RemoteAddr, "uri", r.RequestURI)
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
		}),
	)
}
