package middleware

import (
	"log/slog"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	dErrors "insightboard/pkg/domain-errors"
	"insightboard/pkg/platform/httputil"
	"insightboard/pkg/requestcontext"
)

const limiterIdleTTL = 10 * time.Minute

// RateLimit applies a token bucket per client IP. Idle buckets expire after
// ten minutes. A non-positive rps disables limiting.
func RateLimit(rps float64, burst int, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rps <= 0 {
			return next
		}
		if burst < 1 {
			burst = 1
		}
		limiters := gocache.New(limiterIdleTTL, limiterIdleTTL)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			ip := requestcontext.ClientIP(ctx)

			var limiter *rate.Limiter
			if cached, ok := limiters.Get(ip); ok {
				limiter = cached.(*rate.Limiter)
			} else {
				limiter = rate.NewLimiter(rate.Limit(rps), burst)
				if err := limiters.Add(ip, limiter, gocache.DefaultExpiration); err != nil {
					// Lost a race with a concurrent request from the same client.
					if cached, ok := limiters.Get(ip); ok {
						limiter = cached.(*rate.Limiter)
					}
				}
			}
			limiters.SetDefault(ip, limiter)

			if !limiter.Allow() {
				logger.WarnContext(ctx, "rate limit exceeded",
					"request_id", GetRequestID(ctx),
					"client_ip", ip,
				)
				w.Header().Set("Retry-After", "1")
				httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "rate limit exceeded"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
