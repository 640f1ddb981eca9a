package router

import (
	"github.com/labstack/echo/v4"

	"rodvers/internal/adapter/api/handler"
	"rodvers/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, webhookSecret string) {
	listingHandler := handler.GetListingHandler()
	uploadHandler := handler.GetUploadHandler()

	listings := e.Group("/api/listing")

	// Public read surface.
	listings.GET("/get", listingHandler.ListListings)
	listings.GET("/get/:id", listingHandler.GetListing, authMiddleware.OptionalAuth)
	listings.GET("/schema", listingHandler.GetSchema)

	// Owner-authenticated writes.
	listings.POST("/create", listingHandler.CreateListing, authMiddleware.RequireAuth)
	listings.POST("/upload", uploadHandler.UploadImages, authMiddleware.RequireAuth)
	listings.POST("/update/:id", listingHandler.UpdateListing, authMiddleware.RequireAuth)
	listings.DELETE("/delete/:id", listingHandler.DeleteListing, authMiddleware.RequireAuth)
	listings.POST("/promote/:id", listingHandler.PromoteListing, authMiddleware.RequireAuth)
	listings.POST("/boost/:id", listingHandler.BoostListing, authMiddleware.RequireAuth)

	// Webhook variants authorized by the shared secret header instead of a
	// bearer token.
	secret := middleware.WebhookSecret(webhookSecret)
	listings.POST("/promote/webhook/:id", listingHandler.PromoteWebhook, secret)
	listings.POST("/boost/webhook/:id", listingHandler.BoostWebhook, secret)
}
