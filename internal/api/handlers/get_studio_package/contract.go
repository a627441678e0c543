package get_studio_package

import (
	"context"

	"github.com/m04kA/SMC-StudioBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetPackage(ctx context.Context, studioSlug, packageSlug string) (*models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
