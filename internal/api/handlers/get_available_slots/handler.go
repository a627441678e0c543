package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StudioBookingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-StudioBookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidQuery     = "Invalid query parameters, expected package_id as UUID and dates as YYYY-MM-DD"
	msgStudioNotFound   = "Studio not found"
	msgPackageNotFound  = "Package not found"
	msgInvalidDateRange = "Invalid date range: date_to must not be earlier than date_from"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /public/studios/{studioId}/available-slots
// Query params: package_id, date_from, date_to (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем studioId из URL
	studioID, err := handlers.PathUUID(r, "studioId")
	if err != nil {
		h.logger.Warn("GET /studios/{id}/available-slots - Malformed studio ID: %v", err)
		handlers.RespondNotFound(w, msgStudioNotFound)
		return
	}

	useCaseReq, err := ToUseCaseRequest(studioID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /studios/{id}/available-slots - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrStudioNotFound):
			h.logger.Warn("GET /studios/{id}/available-slots - Studio not found: studio_id=%s", studioID)
			handlers.RespondNotFound(w, msgStudioNotFound)

		case errors.Is(err, getAvailableSlots.ErrPackageNotFound):
			h.logger.Warn("GET /studios/{id}/available-slots - Package not found: studio_id=%s, package_id=%v",
				studioID, useCaseReq.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDateRange):
			h.logger.Warn("GET /studios/{id}/available-slots - Invalid date range: studio_id=%s", studioID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("GET /studios/{id}/available-slots - Failed to get slots: studio_id=%s, error=%v", studioID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /studios/{id}/available-slots - Slots retrieved successfully: studio_id=%s, slots_count=%d",
		studioID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
