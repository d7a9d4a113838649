package cloudinary

import (
	"context"
	"errors"
	"fmt"
	"io"

	cldsdk "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// uploadAPI is the subset of the Cloudinary upload API the uploader needs.
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

// Uploader stores streams in Cloudinary with automatic resource type detection.
type Uploader struct {
	api    uploadAPI
	folder string
}

func New(cloudName, apiKey, apiSecret, folder string) (*Uploader, error) {
	cld, err := cldsdk.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config: %w", err)
	}
	return &Uploader{api: &cld.Upload, folder: folder}, nil
}

// UploadStream uploads r and returns its secure URL.
func (u *Uploader) UploadStream(ctx context.Context, r io.Reader) (string, error) {
	res, err := u.api.Upload(ctx, r, uploader.UploadParams{
		ResourceType: "auto",
		Folder:       u.folder,
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}
	if res.SecureURL == "" {
		return "", errors.New("cloudinary upload: empty secure_url")
	}
	return res.SecureURL, nil
}
