package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/agrohelp/agrohelp-api/internal/api/metrics"
	"github.com/agrohelp/agrohelp-api/internal/core/ports"
)

// RateLimit rejects requests once the caller's IP exhausts its window. The
// limiter failing open would silently drop protection, so a limiter error is
// logged and the request is allowed through.
func RateLimit(limiter ports.RateLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			allowed, retryAfter, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.RateLimitHitsTotal.Inc()
				seconds := int(retryAfter.Seconds())
				if seconds < 1 {
					seconds = 1
				}
				c.Response().Header().Set("Retry-After", fmt.Sprintf("%d", seconds))
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":       "too many requests, slow down",
					"retry_after": seconds,
				})
			}
			return next(c)
		}
	}
}
