package router

import (
	"github.com/labstack/echo/v4"

	"rodvers/internal/adapter/api/handler"
)

func SetupAuthRouter(e *echo.Echo, authLimiter echo.MiddlewareFunc) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.Signup, authLimiter)
	auth.POST("/signin", authHandler.Signin, authLimiter)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/google", authHandler.Google)
}
