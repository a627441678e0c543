package get_studio_packages

import (
	"context"

	"github.com/m04kA/SMC-StudioBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListPackages(ctx context.Context, slug string) ([]models.PackageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
