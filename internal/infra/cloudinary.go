package infra

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"autoescuelas/internal/infra/config"
	"autoescuelas/internal/models/response_models"
)

func NewCloudinary(cfg *config.AppConfig) (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromURL(cfg.CloudinaryURL)
}

// CloudinaryBackend adapts the Cloudinary SDK to the upload service.
type CloudinaryBackend struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryBackend(cld *cloudinary.Cloudinary) *CloudinaryBackend {
	return &CloudinaryBackend{cld: cld}
}

func (c *CloudinaryBackend) Upload(ctx context.Context, file io.Reader, folder string) (*response_models.UploadResult, error) {
	res, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, err
	}

	return &response_models.UploadResult{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
	}, nil
}
