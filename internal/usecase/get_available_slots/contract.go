package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

// StudioRepository интерфейс репозитория студий
type StudioRepository interface {
	GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Studio, error)
}

// PackageRepository интерфейс каталога пакетов
type PackageRepository interface {
	GetPublicByStudioAndID(ctx context.Context, studioID, id uuid.UUID) (*domain.Package, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// ListAvailable возвращает бронируемые слоты, отсортированные по дате и времени начала
	ListAvailable(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
