package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBookingService/pkg/ptr"
)

func TestPackage_ResolveDuration_FixedLength(t *testing.T) {
	pkg := &Package{DurationMinutes: 60, AllowCustomDuration: false}

	d, err := pkg.ResolveDuration(nil)
	require.NoError(t, err)
	assert.Equal(t, 60, d)

	_, err = pkg.ResolveDuration(ptr.Ptr(90))
	assert.ErrorIs(t, err, ErrCustomDurationNotAllowed)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestPackage_ResolveDuration_Bounds(t *testing.T) {
	pkg := &Package{
		DurationMinutes:     60,
		AllowCustomDuration: true,
		MinDurationMinutes:  ptr.Ptr(30),
		MaxDurationMinutes:  ptr.Ptr(120),
	}

	d, err := pkg.ResolveDuration(ptr.Ptr(90))
	require.NoError(t, err)
	assert.Equal(t, 90, d)

	_, err = pkg.ResolveDuration(ptr.Ptr(20))
	var durErr *DurationError
	require.True(t, errors.As(err, &durErr))
	assert.Equal(t, BoundMinimum, durErr.Bound)
	assert.Equal(t, "minimum duration is 30 minutes", err.Error())

	_, err = pkg.ResolveDuration(ptr.Ptr(180))
	require.True(t, errors.As(err, &durErr))
	assert.Equal(t, BoundMaximum, durErr.Bound)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestPackage_ResolveDuration_Unbounded(t *testing.T) {
	pkg := &Package{DurationMinutes: 60, AllowCustomDuration: true}

	d, err := pkg.ResolveDuration(ptr.Ptr(240))
	require.NoError(t, err)
	assert.Equal(t, 240, d)
}

func TestSlot_ResolvePrice(t *testing.T) {
	pkg := &Package{BasePrice: 100}

	assert.Equal(t, 150.0, (&Slot{OverridePrice: ptr.Ptr(150.0)}).ResolvePrice(pkg))
	assert.Equal(t, 100.0, (&Slot{}).ResolvePrice(pkg))
	assert.Equal(t, 0.0, (&Slot{}).ResolvePrice(nil))
}

func TestSlot_IsBookableOn(t *testing.T) {
	today := time.Date(2026, 5, 10, 15, 0, 0, 0, time.UTC)
	slot := &Slot{
		Date:            time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		MaxCapacity:     2,
		CurrentBookings: 1,
		IsAvailable:     true,
	}
	assert.True(t, slot.IsBookableOn(today))

	slot.CurrentBookings = 2
	assert.False(t, slot.IsBookableOn(today))
	assert.Equal(t, 0, slot.AvailableCapacity())

	slot.CurrentBookings = 0
	slot.Date = today.AddDate(0, 0, -1)
	assert.False(t, slot.IsBookableOn(today))
}

func TestSlot_AcceptsPackage(t *testing.T) {
	pkgID := uuid.New()

	assert.True(t, (&Slot{}).AcceptsPackage(pkgID))
	assert.True(t, (&Slot{PackageID: &pkgID}).AcceptsPackage(pkgID))
	assert.False(t, (&Slot{PackageID: ptr.Ptr(uuid.New())}).AcceptsPackage(pkgID))
}

func TestAppointment_CanBeCancelled(t *testing.T) {
	for status, want := range map[AppointmentStatus]bool{
		StatusPending:   true,
		StatusConfirmed: true,
		StatusCancelled: false,
		StatusCompleted: false,
		StatusNoShow:    false,
	} {
		a := &Appointment{Status: status}
		assert.Equal(t, want, a.CanBeCancelled(), status)
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus(&Package{RequiresApproval: true}))
	assert.Equal(t, StatusConfirmed, InitialStatus(&Package{}))
}

func TestCustomer_MatchesEmail(t *testing.T) {
	c := &Customer{Email: "ana@example.com"}
	assert.True(t, c.MatchesEmail("  Ana@Example.COM "))
	assert.False(t, c.MatchesEmail("anna@example.com"))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "unavailable", Kind(NewError("slot full", ErrUnavailable)))
	assert.Equal(t, "invalid_request", Kind(&DurationError{Bound: BoundMaximum, Limit: 120}))
	assert.Equal(t, "internal", Kind(errors.New("db down")))
}
