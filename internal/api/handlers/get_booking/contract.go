package get_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetForCustomer(ctx context.Context, id uuid.UUID, email string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
