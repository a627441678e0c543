package cancel_booking

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
	cancelBooking "github.com/m04kA/SMC-StudioBookingService/internal/usecase/cancel_booking"
	"github.com/m04kA/SMC-StudioBookingService/pkg/logger"
	"github.com/m04kA/SMC-StudioBookingService/pkg/ptr"
	"github.com/m04kA/SMC-StudioBookingService/pkg/types"
)

type fixture struct {
	store       *storagetest.Store
	slot        *domain.Slot
	appointment *domain.Appointment
	router      *mux.Router
}

func newFixture(t *testing.T, status domain.AppointmentStatus) *fixture {
	t.Helper()
	store := storagetest.New()
	studio := store.AddStudio(domain.Studio{Slug: "lumen", IsActive: true})
	pkg := store.AddPackage(domain.Package{StudioID: studio.ID, DurationMinutes: 60, Status: domain.PackageActive, IsPublic: true})
	slot := store.AddSlot(domain.Slot{
		StudioID:        studio.ID,
		Date:            time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       types.MustTimeString("10:00"),
		EndTime:         types.MustTimeString("11:00"),
		MaxCapacity:     1,
		CurrentBookings: 1,
		IsAvailable:     true,
	})
	customer := store.AddCustomer(domain.Customer{Email: "ana@example.com", FirstName: "Ana", LastName: "Lima"})
	appointment := store.AddAppointment(domain.Appointment{
		StudioID:   studio.ID,
		CustomerID: customer.ID,
		TimeSlotID: slot.ID,
		PackageID:  pkg.ID,
		Status:     status,
	})

	uc := cancelBooking.NewUseCase(
		store.Appointments(), store.Customers(), store.Slots(), nil, store.TxManager(), nil, logger.NewNop(), time.Second,
	)

	router := mux.NewRouter()
	router.HandleFunc("/public/bookings/{bookingId}/cancel", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodPost)

	return &fixture{store: store, slot: slot, appointment: appointment, router: router}
}

func (f *fixture) cancel(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, path, nil))
	return w
}

func TestHandle_Cancelled(t *testing.T) {
	f := newFixture(t, domain.StatusConfirmed)

	w := f.cancel("/public/bookings/" + f.appointment.ID.String() + "/cancel?customer_email=ANA@example.com&cancellation_reason=sick")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"Booking cancelled successfully","status":"success"}`, w.Body.String())

	stored := f.store.Appointment(f.appointment.ID)
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	assert.Equal(t, "sick", ptr.Value(stored.CancellationReason))
	assert.Equal(t, 0, f.store.Slot(f.slot.ID).CurrentBookings)
}

func TestHandle_SecondCancelIsInvalidState(t *testing.T) {
	f := newFixture(t, domain.StatusConfirmed)
	path := "/public/bookings/" + f.appointment.ID.String() + "/cancel?customer_email=ana@example.com"

	require.Equal(t, http.StatusOK, f.cancel(path).Code)

	w := f.cancel(path)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, handlers.KindInvalidState, body.Kind)
	assert.Equal(t, "Booking is already cancelled", body.Detail)
	assert.Equal(t, 0, f.store.Slot(f.slot.ID).CurrentBookings)
}

func TestHandle_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status domain.AppointmentStatus
		path   func(f *fixture) string
		code   int
		kind   string
		detail string
	}{
		{
			name:   "foreign email",
			status: domain.StatusConfirmed,
			path: func(f *fixture) string {
				return "/public/bookings/" + f.appointment.ID.String() + "/cancel?customer_email=eve@example.com"
			},
			code:   http.StatusForbidden,
			kind:   handlers.KindForbidden,
			detail: "Invalid booking ID or email",
		},
		{
			name:   "completed",
			status: domain.StatusCompleted,
			path: func(f *fixture) string {
				return "/public/bookings/" + f.appointment.ID.String() + "/cancel?customer_email=ana@example.com"
			},
			code:   http.StatusBadRequest,
			kind:   handlers.KindInvalidState,
			detail: "Cannot cancel completed booking",
		},
		{
			name:   "unknown booking",
			status: domain.StatusConfirmed,
			path: func(*fixture) string {
				return "/public/bookings/6f1c1f3e-8d0a-4a53-9a57-4a1f0f0f0f0f/cancel?customer_email=ana@example.com"
			},
			code:   http.StatusNotFound,
			kind:   handlers.KindNotFound,
			detail: "Booking not found",
		},
		{
			name:   "missing email",
			status: domain.StatusConfirmed,
			path: func(f *fixture) string {
				return "/public/bookings/" + f.appointment.ID.String() + "/cancel"
			},
			code:   http.StatusBadRequest,
			kind:   handlers.KindInvalidRequest,
			detail: "customer_email query parameter is required",
		},
		{
			name:   "malformed id",
			status: domain.StatusConfirmed,
			path: func(*fixture) string {
				return "/public/bookings/42/cancel?customer_email=ana@example.com"
			},
			code:   http.StatusNotFound,
			kind:   handlers.KindNotFound,
			detail: "Booking not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, tt.status)

			w := f.cancel(tt.path(f))

			assert.Equal(t, tt.code, w.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.kind, body.Kind)
			assert.Equal(t, tt.detail, body.Detail)
			assert.Equal(t, 1, f.store.Slot(f.slot.ID).CurrentBookings)
		})
	}
}
