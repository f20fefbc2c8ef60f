package services

import (
	"context"
	"io"

	"autoescuelas/internal/infra/logger"
	"autoescuelas/internal/models/response_models"
	"autoescuelas/pkg/utils"
)

const MaxUploadBytes = 5 << 20 // 5 MiB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ImageBackend is the hosted image store; this service only vets what goes
// into it.
type ImageBackend interface {
	Upload(ctx context.Context, file io.Reader, folder string) (*response_models.UploadResult, error)
}

type UploadServiceInterface interface {
	UploadImage(ctx context.Context, file io.Reader, contentType string, size int64, folder string) (*response_models.UploadResult, error)
}

type UploadService struct {
	backend ImageBackend
}

func NewUploadService(backend ImageBackend) UploadServiceInterface {
	return &UploadService{backend: backend}
}

func (u *UploadService) UploadImage(ctx context.Context, file io.Reader, contentType string, size int64, folder string) (*response_models.UploadResult, error) {
	if file == nil {
		return nil, utils.ErrFileMissing
	}
	if !allowedImageTypes[contentType] {
		return nil, utils.ErrUnsupportedFile
	}
	if size > MaxUploadBytes {
		return nil, utils.ErrFileTooLarge
	}

	result, err := u.backend.Upload(ctx, file, folder)
	if err != nil {
		logger.Log.WithError(err).Error("Upload backend error")
		return nil, utils.ErrUploadError
	}

	return result, nil
}
