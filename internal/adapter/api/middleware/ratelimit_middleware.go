package middleware

import (
	"github.com/labstack/echo/v4"

	"rodvers/internal/infrastructure/ratelimit"
	"rodvers/pkg/errors"
	"rodvers/pkg/response"
)

// RateLimit throttles by client IP. Applied to the credential endpoints to
// slow down guessing.
func RateLimit(limiter *ratelimit.KeyedLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.RealIP()) {
				return response.Error(c, errors.TooManyRequests("Too many requests, slow down"))
			}
			return next(c)
		}
	}
}
