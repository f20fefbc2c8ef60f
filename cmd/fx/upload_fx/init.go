package upload_fx

import (
	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/fx"

	"autoescuelas/internal/infra"
	"autoescuelas/internal/services"
)

var Module = fx.Provide(
	infra.NewCloudinary,
	NewImageBackend,
	NewUploadService)

func NewImageBackend(cld *cloudinary.Cloudinary) services.ImageBackend {
	return infra.NewCloudinaryBackend(cld)
}

func NewUploadService(backend services.ImageBackend) services.UploadServiceInterface {
	return services.NewUploadService(backend)
}
