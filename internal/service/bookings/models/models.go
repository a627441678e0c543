package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

// Response модели

// CustomerResponse данные клиента бронирования
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// PackageResponse полные данные пакета бронирования
type PackageResponse struct {
	ID          uuid.UUID `json:"id"`
	StudioID    uuid.UUID `json:"studio_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	SessionType string    `json:"session_type"`

	DurationMinutes     int     `json:"duration_minutes"`
	MinDurationMinutes  *int    `json:"min_duration_minutes"`
	MaxDurationMinutes  *int    `json:"max_duration_minutes"`
	AllowCustomDuration bool    `json:"allow_custom_duration"`
	BasePrice           float64 `json:"base_price"`
	Currency            string  `json:"currency"`

	BufferTimeBefore      int  `json:"buffer_time_before"`
	BufferTimeAfter       int  `json:"buffer_time_after"`
	MaxBookingsPerDay     *int `json:"max_bookings_per_day"`
	MinBookingNoticeHours int  `json:"min_booking_notice_hours"`
	MaxBookingDaysAhead   int  `json:"max_booking_days_ahead"`

	IncludedEquipment   []string                `json:"included_equipment"`
	OptionalEquipment   []string                `json:"optional_equipment"`
	SpecialInstructions *string                 `json:"special_instructions"`
	CustomQuestions     []domain.CustomQuestion `json:"custom_questions"`

	Status           string  `json:"status"`
	IsPublic         bool    `json:"is_public"`
	RequiresApproval bool    `json:"requires_approval"`
	FeaturedImageURL *string `json:"featured_image_url"`
	DisplayOrder     int     `json:"display_order"`
	Color            *string `json:"color"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TimeSlotResponse данные слота бронирования
type TimeSlotResponse struct {
	ID              uuid.UUID  `json:"id"`
	StudioID        uuid.UUID  `json:"studio_id"`
	PackageID       *uuid.UUID `json:"package_id"`
	Date            string     `json:"date"`       // "2026-06-10"
	StartTime       string     `json:"start_time"` // "10:00"
	EndTime         string     `json:"end_time"`
	MaxCapacity     int        `json:"max_capacity"`
	CurrentBookings int        `json:"current_bookings"`
	IsAvailable     bool       `json:"is_available"`
	OverridePrice   *float64   `json:"override_price"`
	CreatedAt       time.Time  `json:"created_at"`
}

// AppointmentResponse бронирование вместе с клиентом, пакетом и слотом
type AppointmentResponse struct {
	ID         uuid.UUID `json:"id"`
	StudioID   uuid.UUID `json:"studio_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	TimeSlotID uuid.UUID `json:"time_slot_id"`
	PackageID  uuid.UUID `json:"package_id"`

	SessionType         string                 `json:"session_type"`
	DurationMinutes     int                    `json:"duration_minutes"`
	EquipmentRequested  []string               `json:"equipment_requested"`
	SpecialRequirements *string                `json:"special_requirements"`
	CustomFormResponses map[string]interface{} `json:"custom_form_responses"`

	BasePrice     float64 `json:"base_price"`
	EquipmentCost float64 `json:"equipment_cost"`
	TotalPrice    float64 `json:"total_price"`

	Status string  `json:"status"`
	Notes  *string `json:"notes"`

	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
	ConfirmedAt        *time.Time `json:"confirmed_at"`
	CancelledAt        *time.Time `json:"cancelled_at"`
	CancellationReason *string    `json:"cancellation_reason"`

	Customer *CustomerResponse `json:"customer"`
	Package  *PackageResponse  `json:"package"`
	TimeSlot *TimeSlotResponse `json:"time_slot"`
}

// Методы конвертации

// FromDetails конвертирует бронирование с деталями в DTO
func FromDetails(d *domain.AppointmentDetails) *AppointmentResponse {
	if d == nil || d.Appointment == nil {
		return nil
	}

	a := d.Appointment
	resp := &AppointmentResponse{
		ID:                  a.ID,
		StudioID:            a.StudioID,
		CustomerID:          a.CustomerID,
		TimeSlotID:          a.TimeSlotID,
		PackageID:           a.PackageID,
		SessionType:         string(a.SessionType),
		DurationMinutes:     a.DurationMins,
		EquipmentRequested:  a.EquipmentRequested,
		SpecialRequirements: a.SpecialRequirements,
		CustomFormResponses: a.CustomFormResponses,
		BasePrice:           a.BasePrice,
		EquipmentCost:       a.EquipmentCost,
		TotalPrice:          a.TotalPrice,
		Status:              string(a.Status),
		Notes:               a.Notes,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
		ConfirmedAt:         a.ConfirmedAt,
		CancelledAt:         a.CancelledAt,
		CancellationReason:  a.CancellationReason,
		Customer:            FromDomainCustomer(d.Customer),
		Package:             FromDomainPackage(d.Package),
		TimeSlot:            FromDomainSlot(d.Slot),
	}

	return resp
}

// FromDomainCustomer конвертирует клиента в DTO
func FromDomainCustomer(c *domain.Customer) *CustomerResponse {
	if c == nil {
		return nil
	}
	return &CustomerResponse{
		ID:        c.ID,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt,
	}
}

// FromDomainPackage конвертирует пакет в DTO
func FromDomainPackage(p *domain.Package) *PackageResponse {
	if p == nil {
		return nil
	}
	return &PackageResponse{
		ID:                    p.ID,
		StudioID:              p.StudioID,
		Name:                  p.Name,
		Slug:                  p.Slug,
		Description:           p.Description,
		SessionType:           string(p.SessionType),
		DurationMinutes:       p.DurationMinutes,
		MinDurationMinutes:    p.MinDurationMinutes,
		MaxDurationMinutes:    p.MaxDurationMinutes,
		AllowCustomDuration:   p.AllowCustomDuration,
		BasePrice:             p.BasePrice,
		Currency:              p.Currency,
		BufferTimeBefore:      p.BufferTimeBefore,
		BufferTimeAfter:       p.BufferTimeAfter,
		MaxBookingsPerDay:     p.MaxBookingsPerDay,
		MinBookingNoticeHours: p.MinBookingNoticeHours,
		MaxBookingDaysAhead:   p.MaxBookingDaysAhead,
		IncludedEquipment:     p.IncludedEquipment,
		OptionalEquipment:     p.OptionalEquipment,
		SpecialInstructions:   p.SpecialInstructions,
		CustomQuestions:       p.CustomQuestions,
		Status:                string(p.Status),
		IsPublic:              p.IsPublic,
		RequiresApproval:      p.RequiresApproval,
		FeaturedImageURL:      p.FeaturedImageURL,
		DisplayOrder:          p.DisplayOrder,
		Color:                 p.Color,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}

// FromDomainSlot конвертирует слот в DTO
func FromDomainSlot(s *domain.Slot) *TimeSlotResponse {
	if s == nil {
		return nil
	}
	return &TimeSlotResponse{
		ID:              s.ID,
		StudioID:        s.StudioID,
		PackageID:       s.PackageID,
		Date:            s.Date.Format(domain.DateFormat),
		StartTime:       s.StartTime.String(),
		EndTime:         s.EndTime.String(),
		MaxCapacity:     s.MaxCapacity,
		CurrentBookings: s.CurrentBookings,
		IsAvailable:     s.IsAvailable,
		OverridePrice:   s.OverridePrice,
		CreatedAt:       s.CreatedAt,
	}
}
