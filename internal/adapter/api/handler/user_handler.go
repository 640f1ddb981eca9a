package handler

import (
	"github.com/labstack/echo/v4"

	"rodvers/internal/adapter/api/middleware"
	"rodvers/internal/domain/service"
	"rodvers/internal/usecase"
	"rodvers/pkg/errors"
	"rodvers/pkg/logger"
	"rodvers/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
	media       service.MediaUploader
}

func NewUserHandler(userUseCase *usecase.UserUseCase, media service.MediaUploader) *UserHandler {
	return &UserHandler{userUseCase: userUseCase, media: media}
}

type updateUserRequest struct {
	Username string `json:"username" form:"username" validate:"omitempty,min=3,max=30"`
	Email    string `json:"email" form:"email" validate:"omitempty,email"`
	Password string `json:"password" form:"password" validate:"omitempty,min=6"`
}

func (h *UserHandler) Test(c echo.Context) error {
	return response.Success(c, map[string]string{
		"message": "User API is up",
	})
}

// UpdateUser merges profile fields over the stored record. When the request
// is multipart and carries an "avatar" file, it is uploaded first and the
// resulting URL replaces the avatar.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	targetID := c.Param("id")
	authUserID := middleware.UserID(c)
	// Rejecting a stranger before the avatar is touched avoids uploading an
	// asset the usecase would refuse to commit.
	if targetID != authUserID {
		return response.Error(c, errors.Forbidden("You can only update your own profile", nil))
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	var uploadedAssetID string
	if file, err := c.FormFile("avatar"); err == nil && file != nil {
		if err := checkImageFile(file); err != nil {
			return response.Error(c, err)
		}
		src, err := file.Open()
		if err != nil {
			return response.Error(c, errors.Internal("Unable to read file", err))
		}
		result, err := h.media.Upload(c.Request().Context(), src, service.AvatarFolder, service.AvatarTransform)
		src.Close()
		if err != nil {
			return response.Error(c, errors.Internal("Failed to upload avatar", err))
		}
		input.Avatar = result.URL
		uploadedAssetID = result.AssetID
	}

	user, err := h.userUseCase.Update(c.Request().Context(), targetID, authUserID, input)
	if err != nil {
		// The avatar made it to the media host but the update did not commit.
		if uploadedAssetID != "" {
			if derr := h.media.Delete(c.Request().Context(), uploadedAssetID); derr != nil {
				logger.Warn("failed to clean up uploaded asset", "assetId", uploadedAssetID, "err", derr)
			}
		}
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

// UpdateAvatar replaces only the avatar (multipart field "avatar").
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		return response.Error(c, errors.BadRequest("No file uploaded", err))
	}
	if err := checkImageFile(file); err != nil {
		return response.Error(c, err)
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	result, err := h.media.Upload(c.Request().Context(), src, service.AvatarFolder, service.AvatarTransform)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to upload avatar", err))
	}

	user, err := h.userUseCase.UpdateAvatar(c.Request().Context(), middleware.UserID(c), result.URL)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, user)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	err := h.userUseCase.Delete(c.Request().Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Account has been deleted",
	})
}
