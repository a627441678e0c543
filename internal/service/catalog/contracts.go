package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

// StudioRepository интерфейс репозитория студий
type StudioRepository interface {
	GetActiveBySlug(ctx context.Context, slug string) (*domain.Studio, error)
}

// PackageRepository интерфейс каталога пакетов
type PackageRepository interface {
	GetPublicByStudioAndSlug(ctx context.Context, studioID uuid.UUID, slug string) (*domain.Package, error)
	ListPublicByStudio(ctx context.Context, studioID uuid.UUID) ([]*domain.Package, error)
}

// Cache интерфейс кеша ответов каталога. Ошибки кеша не ломают чтение
type Cache interface {
	Get(ctx context.Context, key string, dst interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
