package get_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-StudioBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBookingService/internal/service/bookings"
)

const (
	msgMissingEmail = "customer_email query parameter is required"
	msgNotFound     = "Booking not found"
	msgForbidden    = "Invalid booking ID or email"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /public/bookings/{bookingId}?customer_email=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	bookingID, err := handlers.PathUUID(r, "bookingId")
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Malformed booking ID: %v", err)
		handlers.RespondNotFound(w, msgNotFound)
		return
	}

	// Email клиента заменяет авторизацию
	email := strings.TrimSpace(r.URL.Query().Get("customer_email"))
	if email == "" {
		h.logger.Warn("GET /bookings/{id} - Missing customer email: booking_id=%s", bookingID)
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	// Получаем бронирование (сервис сам проверит email)
	booking, err := h.service.GetForCustomer(r.Context(), bookingID, email)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id} - Access denied: booking_id=%s", bookingID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingEmail)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved successfully: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
