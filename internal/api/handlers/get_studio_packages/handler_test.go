package get_studio_packages

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
	"github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-StudioBookingService/internal/service/catalog"
	"github.com/m04kA/SMC-StudioBookingService/internal/service/catalog/models"
	"github.com/m04kA/SMC-StudioBookingService/pkg/logger"
)

func serve(store *storagetest.Store, path string) *httptest.ResponseRecorder {
	svc := catalog.NewService(store.Studios(), store.Packages(), nil, logger.NewNop())
	router := mux.NewRouter()
	router.HandleFunc("/public/studios/{slug}/packages", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandle_Ordered(t *testing.T) {
	store := storagetest.New()
	studio := store.AddStudio(domain.Studio{Slug: "lumen", IsActive: true})
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	store.AddPackage(domain.Package{StudioID: studio.ID, Slug: "b", DisplayOrder: 2, CreatedAt: base, Status: domain.PackageActive, IsPublic: true})
	store.AddPackage(domain.Package{StudioID: studio.ID, Slug: "a", DisplayOrder: 1, CreatedAt: base, Status: domain.PackageActive, IsPublic: true})
	store.AddPackage(domain.Package{StudioID: studio.ID, Slug: "hidden", Status: domain.PackageActive, IsPublic: false})

	w := serve(store, "/public/studios/lumen/packages")
	require.Equal(t, http.StatusOK, w.Code)

	var resp []models.PackageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "a", resp[0].Slug)
	assert.Equal(t, "b", resp[1].Slug)
}

func TestHandle_EmptyStudio(t *testing.T) {
	store := storagetest.New()
	store.AddStudio(domain.Studio{Slug: "lumen", IsActive: true})

	w := serve(store, "/public/studios/lumen/packages")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandle_StudioNotFound(t *testing.T) {
	w := serve(storagetest.New(), "/public/studios/missing/packages")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"kind":"not_found","detail":"Studio not found"}`, w.Body.String())
}
