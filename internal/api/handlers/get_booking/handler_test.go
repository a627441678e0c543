package get_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-StudioBookingService/internal/service/bookings/models"
	"github.com/m04kA/SMC-StudioBookingService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetForCustomer(ctx context.Context, id uuid.UUID, email string) (*models.AppointmentResponse, error) {
	args := m.Called(ctx, id, email)
	resp, _ := args.Get(0).(*models.AppointmentResponse)
	return resp, args.Error(1)
}

func serve(svc BookingService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/public/bookings/{bookingId}", NewHandler(svc, logger.NewNop()).Handle).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandle_OK(t *testing.T) {
	id := uuid.New()
	svc := &mockService{}
	svc.On("GetForCustomer", mock.Anything, id, "ana@example.com").
		Return(&models.AppointmentResponse{ID: id, Status: "confirmed"}, nil).Once()

	w := serve(svc, "/public/bookings/"+id.String()+"?customer_email=ana@example.com")

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	svc.AssertExpectations(t)
}

func TestHandle_MissingEmail(t *testing.T) {
	svc := &mockService{}

	w := serve(svc, "/public/bookings/"+uuid.NewString())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetForCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_MalformedIDIsNotFound(t *testing.T) {
	svc := &mockService{}

	w := serve(svc, "/public/bookings/not-a-uuid?customer_email=ana@example.com")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, handlers.KindNotFound, body.Kind)
	assert.Equal(t, "Booking not found", body.Detail)
	svc.AssertNotCalled(t, "GetForCustomer", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandle_ServiceErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound, handlers.KindNotFound},
		{"email mismatch", bookings.ErrAccessDenied, http.StatusForbidden, handlers.KindForbidden},
		{"internal", fmt.Errorf("%w: db down", bookings.ErrInternal), http.StatusInternalServerError, handlers.KindInternal},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, handlers.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			svc := &mockService{}
			svc.On("GetForCustomer", mock.Anything, id, "ana@example.com").Return(nil, tt.err).Once()

			w := serve(svc, "/public/bookings/"+id.String()+"?customer_email=ana@example.com")

			assert.Equal(t, tt.code, w.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.kind, body.Kind)
			assert.NotContains(t, body.Detail, "db down")
		})
	}
}
