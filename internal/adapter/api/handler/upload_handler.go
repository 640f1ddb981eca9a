package handler

import (
	"fmt"
	"mime/multipart"

	"github.com/labstack/echo/v4"

	"rodvers/internal/domain/entity"
	"rodvers/internal/domain/service"
	"rodvers/pkg/errors"
	"rodvers/pkg/logger"
	"rodvers/pkg/response"
)

const maxUploadBytes = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

type UploadHandler struct {
	media service.MediaUploader
}

func NewUploadHandler(media service.MediaUploader) *UploadHandler {
	return &UploadHandler{media: media}
}

// UploadImages forwards up to 6 multipart files (field "images") to the media
// host and returns their URLs and asset ids. The cap is enforced before any
// network call. When an upload fails mid-batch, assets that already made it
// are destroyed best-effort and the original error is returned.
func (h *UploadHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid multipart form", err))
	}

	files := form.File["images"]
	if len(files) == 0 {
		return response.Error(c, errors.BadRequest("At least 1 image is required", nil))
	}
	if len(files) > entity.MaxImages {
		return response.Error(c, errors.BadRequest(
			fmt.Sprintf("Maximum %d images allowed", entity.MaxImages), nil))
	}
	for _, file := range files {
		if err := checkImageFile(file); err != nil {
			return response.Error(c, err)
		}
	}

	ctx := c.Request().Context()
	uploaded := make([]*service.UploadResult, 0, len(files))

	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			h.cleanup(c, uploaded)
			return response.Error(c, errors.Internal("Unable to read file", err))
		}

		result, err := h.media.Upload(ctx, src, service.ListingFolder, service.ListingTransform)
		src.Close()
		if err != nil {
			h.cleanup(c, uploaded)
			return response.Error(c, errors.Internal("Failed to upload image", err))
		}
		uploaded = append(uploaded, result)
	}

	return response.Success(c, map[string]interface{}{
		"images": uploaded,
	})
}

// cleanup is the compensating action for a partially uploaded batch. Errors
// here are logged and swallowed so they never mask the original failure.
func (h *UploadHandler) cleanup(c echo.Context, uploaded []*service.UploadResult) {
	ctx := c.Request().Context()
	for _, result := range uploaded {
		if err := h.media.Delete(ctx, result.AssetID); err != nil {
			logger.Warn("failed to clean up uploaded asset", "assetId", result.AssetID, "err", err)
		}
	}
}

func checkImageFile(file *multipart.FileHeader) error {
	if file.Size > maxUploadBytes {
		return errors.BadRequest(
			fmt.Sprintf("File %s exceeds the %dMB limit", file.Filename, maxUploadBytes/(1024*1024)), nil)
	}
	contentType := file.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return errors.BadRequest(fmt.Sprintf("File type %s is not supported", contentType), nil)
	}
	return nil
}
