package get_available_slots

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
	"github.com/m04kA/SMC-StudioBookingService/internal/infra/storage/storagetest"
	getAvailableSlots "github.com/m04kA/SMC-StudioBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-StudioBookingService/pkg/logger"
	"github.com/m04kA/SMC-StudioBookingService/pkg/ptr"
	"github.com/m04kA/SMC-StudioBookingService/pkg/types"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fixture struct {
	store  *storagetest.Store
	studio *domain.Studio
	pkg    *domain.Package
	router *mux.Router
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := storagetest.New()
	studio := store.AddStudio(domain.Studio{Slug: "lumen", Timezone: "UTC", IsActive: true})
	pkg := store.AddPackage(domain.Package{
		StudioID:        studio.ID,
		DurationMinutes: 60,
		BasePrice:       100,
		Status:          domain.PackageActive,
		IsPublic:        true,
	})

	uc := getAvailableSlots.NewUseCase(store.Studios(), store.Packages(), store.Slots(), logger.NewNop(), getAvailableSlots.Options{}).
		WithTimeProvider(fixedTime{time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)})

	router := mux.NewRouter()
	router.HandleFunc("/public/studios/{studioId}/available-slots", NewHandler(uc, logger.NewNop()).Handle).
		Methods(http.MethodGet)

	return &fixture{store: store, studio: studio, pkg: pkg, router: router}
}

func (f *fixture) addSlot(day, capacity, booked int, override *float64) *domain.Slot {
	return f.store.AddSlot(domain.Slot{
		StudioID:        f.studio.ID,
		Date:            time.Date(2026, 6, day, 0, 0, 0, 0, time.UTC),
		StartTime:       types.MustTimeString("10:00"),
		EndTime:         types.MustTimeString("11:00"),
		MaxCapacity:     capacity,
		CurrentBookings: booked,
		IsAvailable:     true,
		OverridePrice:   override,
	})
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandle_ReturnsBareList(t *testing.T) {
	f := newFixture(t)
	f.addSlot(3, 2, 2, nil)
	open := f.addSlot(4, 2, 1, ptr.Ptr(150.0))
	plain := f.addSlot(5, 1, 0, nil)

	w := f.get("/public/studios/" + f.studio.ID.String() + "/available-slots?package_id=" + f.pkg.ID.String() +
		"&date_from=2026-06-01&date_to=2026-06-30")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var slots []AvailableSlot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	require.Len(t, slots, 2)

	assert.Equal(t, open.ID, slots[0].ID)
	assert.Equal(t, "2026-06-04", slots[0].Date)
	assert.Equal(t, "10:00", slots[0].StartTime)
	assert.Equal(t, "11:00", slots[0].EndTime)
	assert.Equal(t, 1, slots[0].AvailableCapacity)
	assert.Equal(t, 150.0, slots[0].Price)

	assert.Equal(t, plain.ID, slots[1].ID)
	assert.Equal(t, 100.0, slots[1].Price)
}

func TestHandle_EmptyIsArray(t *testing.T) {
	f := newFixture(t)

	w := f.get("/public/studios/" + f.studio.ID.String() + "/available-slots")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	f := newFixture(t)
	base := "/public/studios/" + f.studio.ID.String() + "/available-slots"

	tests := []struct {
		name string
		path string
		code int
		kind string
	}{
		{"unknown studio", "/public/studios/6f1c1f3e-8d0a-4a53-9a57-4a1f0f0f0f0f/available-slots", http.StatusNotFound, handlers.KindNotFound},
		{"unknown package", base + "?package_id=6f1c1f3e-8d0a-4a53-9a57-4a1f0f0f0f0f", http.StatusNotFound, handlers.KindNotFound},
		{"malformed studio id", "/public/studios/lumen/available-slots", http.StatusNotFound, handlers.KindNotFound},
		{"malformed date", base + "?date_from=01.06.2026", http.StatusBadRequest, handlers.KindInvalidRequest},
		{"inverted range", base + "?date_from=2026-06-10&date_to=2026-06-01", http.StatusBadRequest, handlers.KindInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.get(tt.path)

			assert.Equal(t, tt.code, w.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.kind, body.Kind)
		})
	}
}
