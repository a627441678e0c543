package get_studio_package

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
	"github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-StudioBookingService/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBookingService/pkg/logger"
)

func TestHandle(t *testing.T) {
	store := storagetest.New()
	studio := store.AddStudio(domain.Studio{Slug: "lumen", IsActive: true})
	store.AddPackage(domain.Package{StudioID: studio.ID, Slug: "headshots", Name: "Headshots", Status: domain.PackageActive, IsPublic: true})
	store.AddPackage(domain.Package{StudioID: studio.ID, Slug: "draft", Status: domain.PackageDraft, IsPublic: true})

	svc := catalog.NewService(store.Studios(), store.Packages(), nil, logger.NewNop())
	router := mux.NewRouter()
	router.HandleFunc("/public/studios/{slug}/packages/{packageSlug}", NewHandler(svc, logger.NewNop()).Handle).
		Methods(http.MethodGet)

	tests := []struct {
		name   string
		path   string
		code   int
		detail string
	}{
		{"found", "/public/studios/lumen/packages/headshots", http.StatusOK, ""},
		{"draft package", "/public/studios/lumen/packages/draft", http.StatusNotFound, "Package not found"},
		{"unknown studio", "/public/studios/nope/packages/headshots", http.StatusNotFound, "Studio not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, tt.code, w.Code)
			if tt.detail == "" {
				assert.Contains(t, w.Body.String(), `"name":"Headshots"`)
				return
			}
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.detail, body.Detail)
		})
	}
}
