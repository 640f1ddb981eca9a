package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"rodvers/internal/domain/service"
)

// Client implements service.MediaUploader against Cloudinary.
type Client struct {
	cld *cloudinary.Cloudinary
}

func NewClient(cloudName, apiKey, apiSecret string) (*Client, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	return &Client{cld: cld}, nil
}

func (c *Client) Upload(ctx context.Context, r io.Reader, folder, transform string) (*service.UploadResult, error) {
	resp, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:         folder,
		PublicID:       uuid.New().String(),
		Transformation: transform,
	})
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	// The SDK reports some upload failures in the response body instead of err.
	if resp.Error.Message != "" {
		return nil, fmt.Errorf("upload failed: %s", resp.Error.Message)
	}

	return &service.UploadResult{
		URL:     resp.SecureURL,
		AssetID: resp.PublicID,
	}, nil
}

func (c *Client) Delete(ctx context.Context, assetID string) error {
	resp, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: assetID})
	if err != nil {
		return fmt.Errorf("destroy failed: %w", err)
	}
	if resp.Result != "ok" && resp.Result != "not found" {
		return fmt.Errorf("destroy failed: %s", resp.Result)
	}
	return nil
}
