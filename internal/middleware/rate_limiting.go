package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gprawdzik/x10dev-zaliczenie/internal/auth"
	"github.com/gprawdzik/x10dev-zaliczenie/internal/telemetry/metrics"
	"github.com/gprawdzik/x10dev-zaliczenie/pkg"

	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RateLimit allows allowedPerMin requests per minute per user on the wrapped route.
// Requests without an authenticated user are keyed by client IP.
func RateLimit(
	rateLimiter RequestRateLimiter,
	metricsManager *metrics.Manager,
	routeName string,
	allowedPerMin int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := auth.UserIDFromContext(r.Context())
			if !ok {
				caller, _ = pkg.ReadUserIP(r)
			}

			res, err := rateLimiter.Allow(
				r.Context(),
				fmt.Sprintf("%s::%s", routeName, caller),
				redis_rate.PerMinute(allowedPerMin),
			)
			if err != nil {
				log.Errorf("rate limit %s for %s: %s", routeName, caller, err)
				pkg.WriteError(w, http.StatusInternalServerError, pkg.ErrCodeInternal, "rate limit internal error", nil)
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			if metricsManager != nil {
				metricsManager.CounterRateLimitedRequests.Inc()
			}

			retryAfter := int(math.Ceil(res.RetryAfter.Seconds()))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			pkg.WriteError(
				w,
				http.StatusTooManyRequests,
				pkg.ErrCodeRateLimited,
				fmt.Sprintf("retry after %d seconds", retryAfter),
				map[string]any{"retry_after_seconds": retryAfter},
			)
		})
	}
}
