package cancel_booking

import (
	"net/url"

	"github.com/google/uuid"

	cancelBooking "github.com/m04kA/SMC-StudioBookingService/internal/usecase/cancel_booking"
)

const msgCancelled = "Booking cancelled successfully"

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(bookingID uuid.UUID, query url.Values) *cancelBooking.Request {
	req := &cancelBooking.Request{
		AppointmentID: bookingID,
		Email:         query.Get("customer_email"),
	}
	if query.Has("cancellation_reason") {
		reason := query.Get("cancellation_reason")
		req.Reason = &reason
	}
	return req
}
