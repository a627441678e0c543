package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Customer, error)
}

// PackageRepository интерфейс каталога пакетов.
// Пакет бронирования отдается даже если он с тех пор стал неактивным
type PackageRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Package, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
