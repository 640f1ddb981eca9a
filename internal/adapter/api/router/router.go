package router

import (
	"github.com/labstack/echo/v4"

	"rodvers/internal/adapter/api/middleware"
)

// Setup registers every route group on the Echo instance.
func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, webhookSecret string, authLimiter echo.MiddlewareFunc) {
	SetupAuthRouter(e, authLimiter)
	SetupUserRouter(e, authMiddleware)
	SetupListingRouter(e, authMiddleware, webhookSecret)
	SetupHealthRouter(e)
}
