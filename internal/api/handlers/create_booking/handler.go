package create_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-StudioBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-StudioBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody     = "Invalid request body"
	msgPackageNotFound        = "Package not found or not available for booking"
	msgSlotNotAvailable       = "Time slot not available or fully booked"
	msgSlotPackageMismatch    = "This time slot is not available for the selected package"
	msgCustomDurationDisabled = "Custom duration not allowed for this package"
	msgOutsideBookingWindow   = "This time slot is outside the booking window of the package"
	msgInvalidInput           = "Invalid booking data"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /public/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		} else {
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var durationErr *domain.DurationError

		switch {
		case errors.Is(err, createBooking.ErrPackageNotFound):
			h.logger.Warn("POST /bookings - Package not found: package_id=%s", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: time_slot_id=%s", req.TimeSlotID)
			handlers.RespondUnavailable(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrSlotPackageMismatch):
			h.logger.Warn("POST /bookings - Slot bound to another package: time_slot_id=%s, package_id=%s",
				req.TimeSlotID, req.PackageID)
			handlers.RespondConflict(w, msgSlotPackageMismatch)

		case errors.Is(err, createBooking.ErrCustomDurationNotAllowed):
			h.logger.Warn("POST /bookings - Custom duration not allowed: package_id=%s", req.PackageID)
			handlers.RespondBadRequest(w, msgCustomDurationDisabled)

		case errors.As(err, &durationErr):
			h.logger.Warn("POST /bookings - Duration out of bounds: package_id=%s, %v", req.PackageID, durationErr)
			handlers.RespondBadRequest(w, durationMessage(durationErr))

		case errors.Is(err, createBooking.ErrOutsideBookingWindow):
			h.logger.Warn("POST /bookings - Outside booking window: time_slot_id=%s, package_id=%s",
				req.TimeSlotID, req.PackageID)
			handlers.RespondBadRequest(w, msgOutsideBookingWindow)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: package_id=%s, time_slot_id=%s, error=%v",
				req.PackageID, req.TimeSlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, time_slot_id=%s, status=%s",
		result.Appointment.ID, req.TimeSlotID, result.Appointment.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// durationMessage "Minimum duration is 30 minutes"
func durationMessage(err *domain.DurationError) string {
	msg := err.Error()
	return strings.ToUpper(msg[:1]) + msg[1:]
}
