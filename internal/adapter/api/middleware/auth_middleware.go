package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"rodvers/internal/usecase"
	"rodvers/pkg/errors"
	"rodvers/pkg/response"
)

const (
	ContextUserID  = "uid"
	ContextIsAdmin = "admin"
)

type AuthMiddleware struct {
	tokens usecase.TokenManager
}

func NewAuthMiddleware(tokens usecase.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireAuth verifies the bearer token and attaches the identity to the
// request context. Requests without a valid token are rejected.
func (m *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		userID, admin, err := m.tokens.Verify(token)
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		c.Set(ContextUserID, userID)
		c.Set(ContextIsAdmin, admin)
		return next(c)
	}
}

// OptionalAuth attaches the identity when a valid token is present and lets
// the request through either way.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := bearerToken(c)
		if !ok {
			return next(c)
		}
		userID, admin, err := m.tokens.Verify(token)
		if err != nil {
			return next(c)
		}
		c.Set(ContextUserID, userID)
		c.Set(ContextIsAdmin, admin)
		return next(c)
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// UserID returns the authenticated user id from the context, empty when the
// request was anonymous.
func UserID(c echo.Context) string {
	if uid, ok := c.Get(ContextUserID).(string); ok {
		return uid
	}
	return ""
}
