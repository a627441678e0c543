package domain

import (
	"time"

	"github.com/google/uuid"
)

// Studio is a tenant of the platform: a photo studio with its public profile.
type Studio struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description *string

	Email   *string
	Phone   *string
	Website *string

	AddressLine1 *string
	AddressLine2 *string
	City         *string
	State        *string
	PostalCode   *string
	Country      *string

	Timezone              string
	Currency              string
	BookingWindowDays     int
	MinBookingNoticeHours int
	IsActive              bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
