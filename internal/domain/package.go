package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/pkg/types"
)

// SessionType kind of photo session a package offers
type SessionType string

const (
	SessionPortrait     SessionType = "portrait"
	SessionFamily       SessionType = "family"
	SessionProfessional SessionType = "professional"
	SessionCreative     SessionType = "creative"
	SessionProduct      SessionType = "product"
	SessionEvent        SessionType = "event"
)

// PackageStatus lifecycle of a package
type PackageStatus string

const (
	PackageActive   PackageStatus = "active"
	PackageInactive PackageStatus = "inactive"
	PackageDraft    PackageStatus = "draft"
)

// CustomQuestion is an extra question a studio asks on the booking form.
type CustomQuestion struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Type        string   `json:"type"`
	Required    bool     `json:"required"`
	Options     []string `json:"options,omitempty"`
	Placeholder *string  `json:"placeholder,omitempty"`
	HelpText    *string  `json:"help_text,omitempty"`
}

// Package is a bookable service offering with pricing and duration rules.
// Read-only for the booking engine.
type Package struct {
	ID          uuid.UUID
	StudioID    uuid.UUID
	Name        string
	Slug        string
	Description *string
	SessionType SessionType

	DurationMinutes     int
	MinDurationMinutes  *int
	MaxDurationMinutes  *int
	AllowCustomDuration bool

	BasePrice float64
	Currency  string

	BufferTimeBefore      int
	BufferTimeAfter       int
	MaxBookingsPerDay     *int
	MinBookingNoticeHours int
	MaxBookingDaysAhead   int

	IncludedEquipment   types.JSONList[string]
	OptionalEquipment   types.JSONList[string]
	SpecialInstructions *string
	CustomQuestions     types.JSONList[CustomQuestion]

	Status           PackageStatus
	IsPublic         bool
	RequiresApproval bool

	FeaturedImageURL *string
	DisplayOrder     int
	Color            *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if customers may book the package from the public flow
func (p *Package) IsBookable() bool {
	return p.Status == PackageActive && p.IsPublic
}

// ResolveDuration returns the session length for a reservation.
// Without a requested duration the package default is used. A requested
// duration is rejected when custom durations are disabled and must respect
// the min/max bounds when they are set.
func (p *Package) ResolveDuration(requested *int) (int, error) {
	if requested == nil {
		return p.DurationMinutes, nil
	}
	if !p.AllowCustomDuration {
		return 0, ErrCustomDurationNotAllowed
	}
	if p.MinDurationMinutes != nil && *requested < *p.MinDurationMinutes {
		return 0, &DurationError{Bound: BoundMinimum, Limit: *p.MinDurationMinutes}
	}
	if p.MaxDurationMinutes != nil && *requested > *p.MaxDurationMinutes {
		return 0, &DurationError{Bound: BoundMaximum, Limit: *p.MaxDurationMinutes}
	}
	return *requested, nil
}

// ErrCustomDurationNotAllowed duration given for a package with a fixed length
var ErrCustomDurationNotAllowed = wrapKind("custom duration not allowed for this package", ErrInvalidRequest)
