package router

import (
	"github.com/labstack/echo/v4"

	"rodvers/internal/adapter/api/handler"
	"rodvers/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	users := e.Group("/api/user")
	users.GET("/test", userHandler.Test)
	users.PATCH("/update/:id", userHandler.UpdateUser, authMiddleware.RequireAuth)
	users.PATCH("/avatar", userHandler.UpdateAvatar, authMiddleware.RequireAuth)
	users.DELETE("/delete/:id", userHandler.DeleteUser, authMiddleware.RequireAuth)
}
