package cancel_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-StudioBookingService/internal/api/handlers"
	cancelBooking "github.com/m04kA/SMC-StudioBookingService/internal/usecase/cancel_booking"
)

const (
	msgMissingEmail      = "customer_email query parameter is required"
	msgInvalidInput      = "Invalid cancellation data"
	msgNotFound          = "Booking not found"
	msgForbidden         = "Invalid booking ID or email"
	msgAlreadyCancelled  = "Booking is already cancelled"
	msgCannotCancelFinal = "Cannot cancel completed booking"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /public/bookings/{bookingId}/cancel?customer_email=&cancellation_reason=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	bookingID, err := handlers.PathUUID(r, "bookingId")
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/cancel - Malformed booking ID: %v", err)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	useCaseReq := ToUseCaseRequest(bookingID, r.URL.Query())
	if strings.TrimSpace(useCaseReq.Email) == "" {
		h.logger.Warn("POST /bookings/{id}/cancel - Missing customer email: booking_id=%s", bookingID)
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	// Отменяем бронирование
	_, err = h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/cancel - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelBooking.ErrEmailMismatch):
			h.logger.Warn("POST /bookings/{id}/cancel - Access denied: booking_id=%s", bookingID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelBooking.ErrAlreadyCancelled):
			h.logger.Warn("POST /bookings/{id}/cancel - Already cancelled: booking_id=%s", bookingID)
			handlers.RespondInvalidState(w, msgAlreadyCancelled)

		case errors.Is(err, cancelBooking.ErrBookingFinished):
			h.logger.Warn("POST /bookings/{id}/cancel - Booking finished: booking_id=%s", bookingID)
			handlers.RespondInvalidState(w, msgCannotCancelFinal)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/{id}/cancel - Failed to cancel booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/cancel - Booking cancelled successfully: booking_id=%s", bookingID)
	handlers.RespondMessage(w, msgCancelled)
}
