package service

import (
	"context"
	"io"
)

// Folders and transforms used by the media host. Transforms limit dimensions
// server-side so oversized originals never get served.
const (
	ListingFolder    = "listings_app"
	AvatarFolder     = "listings_app_avatars"
	ListingTransform = "c_limit,w_1200,h_1200"
	AvatarTransform  = "c_limit,w_400,h_400"
)

type UploadResult struct {
	URL     string `json:"url"`
	AssetID string `json:"assetId"`
}

// MediaUploader forwards file content to the third-party media host. AssetID
// is the host-side identifier required for later deletion.
type MediaUploader interface {
	Upload(ctx context.Context, r io.Reader, folder, transform string) (*UploadResult, error)
	Delete(ctx context.Context, assetID string) error
}
