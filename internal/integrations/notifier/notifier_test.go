package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
	"github.com/m04kA/SMC-StudioBookingService/pkg/logger"
	"github.com/m04kA/SMC-StudioBookingService/pkg/types"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event string, payload interface{}) error {
	return m.Called(ctx, event, payload).Error(0)
}

func (m *mockPublisher) Close() error {
	return m.Called().Error(0)
}

func testDetails() *domain.AppointmentDetails {
	return &domain.AppointmentDetails{
		Appointment: &domain.Appointment{
			ID:           uuid.New(),
			StudioID:     uuid.New(),
			PackageID:    uuid.New(),
			TimeSlotID:   uuid.New(),
			SessionType:  domain.SessionFamily,
			DurationMins: 60,
			TotalPrice:   150,
			Status:       domain.StatusPending,
		},
		Customer: &domain.Customer{Email: "ana@example.com", FirstName: "Ana", LastName: "Lima"},
		Package:  &domain.Package{Name: "Family mini", Currency: "EUR", RequiresApproval: true},
		Slot: &domain.Slot{
			Date:      time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
			StartTime: types.MustTimeString("10:00"),
			EndTime:   types.MustTimeString("11:00"),
		},
	}
}

func TestNewBookingCreated(t *testing.T) {
	d := testDetails()
	ev := NewBookingCreated(d, time.Now())

	assert.Equal(t, d.Appointment.ID, ev.AppointmentID)
	assert.Equal(t, "Ana Lima", ev.CustomerName)
	assert.Equal(t, "2026-07-04", ev.Date)
	assert.Equal(t, "10:00", ev.StartTime)
	assert.Equal(t, "pending", ev.Status)
	assert.True(t, ev.RequiresApproval)
}

func TestNotifier_BookingCreated_UsesRoutingKey(t *testing.T) {
	pub := &mockPublisher{}
	ev := NewBookingCreated(testDetails(), time.Now())
	pub.On("Publish", mock.Anything, EventBookingCreated, ev).Return(nil).Once()

	err := New(pub, logger.NewNop()).BookingCreated(context.Background(), ev)

	require.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestNotifier_BookingCancelled_WrapsTransportError(t *testing.T) {
	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, EventBookingCancelled, mock.Anything).Return(errors.New("connection reset")).Once()

	err := New(pub, logger.NewNop()).BookingCancelled(context.Background(), NewBookingCancelled(testDetails(), time.Now()))

	assert.ErrorIs(t, err, ErrPublish)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestNewTask(t *testing.T) {
	ev := NewBookingCreated(testDetails(), time.Now())

	task, opts, err := NewTask(EventBookingCreated, ev, AsynqOptions{Queue: "notifications", MaxRetry: 5, Timeout: time.Minute})
	require.NoError(t, err)

	assert.Equal(t, EventBookingCreated, task.Type())
	assert.Len(t, opts, 3)

	var decoded BookingCreated
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, ev.AppointmentID, decoded.AppointmentID)
}

func TestNewTask_DefaultsAddNoOptions(t *testing.T) {
	_, opts, err := NewTask(EventBookingCancelled, map[string]string{"id": "x"}, AsynqOptions{})
	require.NoError(t, err)
	assert.Empty(t, opts)
}
