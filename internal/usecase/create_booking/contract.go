package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
	"github.com/m04kA/SMC-StudioBookingService/internal/integrations/notifier"
)

// PackageRepository интерфейс каталога пакетов
type PackageRepository interface {
	GetPublicByID(ctx context.Context, id uuid.UUID) (*domain.Package, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Slot, error)
	Reserve(ctx context.Context, id uuid.UUID, today time.Time) error
}

// StudioRepository интерфейс репозитория студий (часовой пояс для окна бронирования)
type StudioRepository interface {
	GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Studio, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetOrCreate(ctx context.Context, c *domain.Customer) (*domain.Customer, error)
}

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
}

// Notifier интерфейс отправки событий в сервис уведомлений
type Notifier interface {
	BookingCreated(ctx context.Context, event notifier.BookingCreated) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики исходов бронирования
type Metrics interface {
	IncBooking(outcome string)
	IncNotificationFailure(event string)
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
