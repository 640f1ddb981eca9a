package router

import (
	"github.com/labstack/echo/v4"

	"rodvers/internal/adapter/api/handler"
	"rodvers/pkg/metrics"
)

func SetupHealthRouter(e *echo.Echo) {
	e.GET("/health", handler.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
}
