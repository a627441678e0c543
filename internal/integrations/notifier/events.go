package notifier

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

// Routing keys (RabbitMQ) и типы задач (asynq)
const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// BookingCreated событие о новом бронировании.
// Содержит все, что нужно для письма клиенту и уведомления студии
type BookingCreated struct {
	AppointmentID    uuid.UUID `json:"appointment_id"`
	StudioID         uuid.UUID `json:"studio_id"`
	PackageID        uuid.UUID `json:"package_id"`
	TimeSlotID       uuid.UUID `json:"time_slot_id"`
	PackageName      string    `json:"package_name"`
	SessionType      string    `json:"session_type"`
	CustomerEmail    string    `json:"customer_email"`
	CustomerName     string    `json:"customer_name"`
	CustomerPhone    *string   `json:"customer_phone,omitempty"`
	Date             string    `json:"date"`
	StartTime        string    `json:"start_time"`
	EndTime          string    `json:"end_time"`
	DurationMinutes  int       `json:"duration_minutes"`
	TotalPrice       float64   `json:"total_price"`
	Currency         string    `json:"currency"`
	Status           string    `json:"status"`
	RequiresApproval bool      `json:"requires_approval"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// BookingCancelled событие об отмене бронирования клиентом
type BookingCancelled struct {
	AppointmentID      uuid.UUID `json:"appointment_id"`
	StudioID           uuid.UUID `json:"studio_id"`
	TimeSlotID         uuid.UUID `json:"time_slot_id"`
	CustomerEmail      string    `json:"customer_email"`
	CustomerName       string    `json:"customer_name"`
	Date               string    `json:"date"`
	StartTime          string    `json:"start_time"`
	CancellationReason *string   `json:"cancellation_reason,omitempty"`
	OccurredAt         time.Time `json:"occurred_at"`
}

// NewBookingCreated собирает событие из созданного бронирования
func NewBookingCreated(d *domain.AppointmentDetails, at time.Time) BookingCreated {
	a := d.Appointment
	return BookingCreated{
		AppointmentID:    a.ID,
		StudioID:         a.StudioID,
		PackageID:        a.PackageID,
		TimeSlotID:       a.TimeSlotID,
		PackageName:      d.Package.Name,
		SessionType:      string(a.SessionType),
		CustomerEmail:    d.Customer.Email,
		CustomerName:     d.Customer.FullName(),
		CustomerPhone:    d.Customer.Phone,
		Date:             d.Slot.Date.Format(domain.DateFormat),
		StartTime:        d.Slot.StartTime.String(),
		EndTime:          d.Slot.EndTime.String(),
		DurationMinutes:  a.DurationMins,
		TotalPrice:       a.TotalPrice,
		Currency:         d.Package.Currency,
		Status:           string(a.Status),
		RequiresApproval: d.Package.RequiresApproval,
		OccurredAt:       at,
	}
}

// NewBookingCancelled собирает событие из отмененного бронирования
func NewBookingCancelled(d *domain.AppointmentDetails, at time.Time) BookingCancelled {
	a := d.Appointment
	return BookingCancelled{
		AppointmentID:      a.ID,
		StudioID:           a.StudioID,
		TimeSlotID:         a.TimeSlotID,
		CustomerEmail:      d.Customer.Email,
		CustomerName:       d.Customer.FullName(),
		Date:               d.Slot.Date.Format(domain.DateFormat),
		StartTime:          d.Slot.StartTime.String(),
		CancellationReason: a.CancellationReason,
		OccurredAt:         at,
	}
}
