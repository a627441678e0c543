package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/pkg/types"
)

// Slot represents a bookable date/time window with finite capacity.
// Invariant: 0 <= CurrentBookings <= MaxCapacity.
type Slot struct {
	ID              uuid.UUID
	StudioID        uuid.UUID
	PackageID       *uuid.UUID // nil = general slot, open to any package of the studio
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	MaxCapacity     int
	CurrentBookings int
	IsAvailable     bool
	OverridePrice   *float64
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasCapacity returns true if at least one more booking fits
func (s *Slot) HasCapacity() bool {
	return s.CurrentBookings < s.MaxCapacity
}

// AvailableCapacity returns how many bookings still fit (never negative)
func (s *Slot) AvailableCapacity() int {
	if s.CurrentBookings >= s.MaxCapacity {
		return 0
	}
	return s.MaxCapacity - s.CurrentBookings
}

// IsBookableOn returns true if the slot is enabled, has capacity and is not in the past relative to today
func (s *Slot) IsBookableOn(today time.Time) bool {
	return s.IsAvailable && s.HasCapacity() && !DateOnly(s.Date).Before(DateOnly(today))
}

// AcceptsPackage returns true for general slots and for slots bound to packageID
func (s *Slot) AcceptsPackage(packageID uuid.UUID) bool {
	return s.PackageID == nil || *s.PackageID == packageID
}

// ResolvePrice returns the slot override price, else the package base price, else zero
func (s *Slot) ResolvePrice(pkg *Package) float64 {
	if s.OverridePrice != nil {
		return *s.OverridePrice
	}
	if pkg != nil {
		return pkg.BasePrice
	}
	return 0
}

// StartsAt returns the slot start as an instant in loc
func (s *Slot) StartsAt(loc *time.Location) (time.Time, error) {
	y, m, d := s.Date.Date()
	return s.StartTime.On(time.Date(y, m, d, 0, 0, 0, 0, loc))
}

// AvailableSlot is a slot as presented by the availability query: capacity left and resolved price
type AvailableSlot struct {
	ID                uuid.UUID
	Date              time.Time
	StartTime         types.TimeString
	EndTime           types.TimeString
	AvailableCapacity int
	Price             float64
}

// SlotFilter фильтр для выборки доступных слотов студии
type SlotFilter struct {
	StudioID  uuid.UUID  // Обязательный параметр
	PackageID *uuid.UUID // Если задан - только общие слоты и слоты этого пакета
	DateFrom  time.Time  // Включительно
	DateTo    time.Time  // Включительно
}

// DateOnly truncates t to midnight in its own location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
