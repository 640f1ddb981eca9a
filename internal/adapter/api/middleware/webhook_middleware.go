package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"rodvers/pkg/errors"
	"rodvers/pkg/response"
)

const PromoteSecretHeader = "x-promote-secret"

// WebhookSecret authorizes promotion webhooks by a shared secret header
// instead of a bearer token. An unconfigured secret disables the webhooks
// entirely rather than accepting anything.
func WebhookSecret(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provided := c.Request().Header.Get(PromoteSecretHeader)
			if secret == "" || provided == "" ||
				subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				return response.Error(c, errors.Unauthorized("Invalid webhook secret", nil))
			}
			return next(c)
		}
	}
}
