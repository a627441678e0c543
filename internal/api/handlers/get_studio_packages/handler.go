package get_studio_packages

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBookingService/internal/service/catalog"
)

const msgStudioNotFound = "Studio not found"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /public/studios/{slug}/packages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	packages, err := h.service.ListPackages(r.Context(), slug)
	if err != nil {
		if errors.Is(err, catalog.ErrStudioNotFound) {
			h.logger.Warn("GET /studios/{slug}/packages - Studio not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgStudioNotFound)
			return
		}
		h.logger.Error("GET /studios/{slug}/packages - Failed to list packages: slug=%s, error=%v", slug, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /studios/{slug}/packages - Packages retrieved successfully: slug=%s, count=%d", slug, len(packages))
	handlers.RespondJSON(w, http.StatusOK, packages)
}
