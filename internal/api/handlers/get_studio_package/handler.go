package get_studio_package

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBookingService/internal/service/catalog"
)

const (
	msgStudioNotFound  = "Studio not found"
	msgPackageNotFound = "Package not found"
)

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

// Handle GET /public/studios/{slug}/packages/{packageSlug}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slug, packageSlug := vars["slug"], vars["packageSlug"]

	pkg, err := h.service.GetPackage(r.Context(), slug, packageSlug)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrStudioNotFound):
			h.logger.Warn("GET /studios/{slug}/packages/{slug} - Studio not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgStudioNotFound)

		case errors.Is(err, catalog.ErrPackageNotFound):
			h.logger.Warn("GET /studios/{slug}/packages/{slug} - Package not found: slug=%s, package=%s", slug, packageSlug)
			handlers.RespondNotFound(w, msgPackageNotFound)

		default:
			h.logger.Error("GET /studios/{slug}/packages/{slug} - Failed to get package: slug=%s, package=%s, error=%v",
				slug, packageSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /studios/{slug}/packages/{slug} - Package retrieved successfully: slug=%s, package=%s", slug, packageSlug)
	handlers.RespondJSON(w, http.StatusOK, pkg)
}
