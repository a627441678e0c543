package cancel_booking

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

// Request модель запроса на отмену бронирования
type Request struct {
	AppointmentID uuid.UUID // ID бронирования
	Email         string    // Email клиента, подтверждает право на отмену
	Reason        *string   // Причина отмены (опционально)
}

// Response отмененное бронирование с клиентом и слотом
type Response = domain.AppointmentDetails
