package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
	StatusNoShow    AppointmentStatus = "no_show"
)

// Appointment is the result of a successful allocation
type Appointment struct {
	ID           uuid.UUID
	StudioID     uuid.UUID
	CustomerID   uuid.UUID
	TimeSlotID   uuid.UUID
	PackageID    uuid.UUID
	SessionType  SessionType
	DurationMins int

	BasePrice     float64
	EquipmentCost float64
	TotalPrice    float64

	Status AppointmentStatus

	EquipmentRequested  types.JSONList[string]
	SpecialRequirements *string
	CustomFormResponses types.JSONMap
	Notes               *string

	ConfirmedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppointmentDetails is an appointment with the entities it references,
// resolved by explicit lookups
type AppointmentDetails struct {
	Appointment *Appointment
	Customer    *Customer
	Package     *Package
	Slot        *Slot
}

// InitialStatus returns the status a new appointment gets for the package
func InitialStatus(pkg *Package) AppointmentStatus {
	if pkg.RequiresApproval {
		return StatusPending
	}
	return StatusConfirmed
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsFinished returns true if the session took place or the customer did not show up
func (a *Appointment) IsFinished() bool {
	return a.Status == StatusCompleted || a.Status == StatusNoShow
}
