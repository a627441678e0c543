package get_studio

import (
	"context"

	"github.com/m04kA/SMC-StudioBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetStudio(ctx context.Context, slug string) (*models.StudioResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
