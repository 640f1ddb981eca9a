package handler

import (
	"rodvers/internal/domain/service"
	"rodvers/internal/usecase"
)

var (
	authHandler    *AuthHandler
	userHandler    *UserHandler
	listingHandler *ListingHandler
	uploadHandler  *UploadHandler
)

// Setup wires the package-level handler registry the routers read from.
func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	listingUseCase *usecase.ListingUseCase,
	media service.MediaUploader,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase, media)
	listingHandler = NewListingHandler(listingUseCase)
	uploadHandler = NewUploadHandler(media)
}

func GetAuthHandler() *AuthHandler       { return authHandler }
func GetUserHandler() *UserHandler       { return userHandler }
func GetListingHandler() *ListingHandler { return listingHandler }
func GetUploadHandler() *UploadHandler   { return uploadHandler }
