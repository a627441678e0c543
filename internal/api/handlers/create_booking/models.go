package create_booking

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-StudioBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerEmail     string  `json:"customer_email" validate:"required,email"`
	CustomerFirstName string  `json:"customer_first_name" validate:"required,min=1,max=100"`
	CustomerLastName  string  `json:"customer_last_name" validate:"required,min=1,max=100"`
	CustomerPhone     *string `json:"customer_phone" validate:"omitempty,max=20"`

	PackageID       uuid.UUID `json:"package_id" validate:"required"`
	TimeSlotID      uuid.UUID `json:"time_slot_id" validate:"required"`
	DurationMinutes *int      `json:"duration_minutes" validate:"omitempty,min=15,max=480"`

	EquipmentRequested  []string               `json:"equipment_requested"`
	SpecialRequirements *string                `json:"special_requirements"`
	CustomFormResponses map[string]interface{} `json:"custom_form_responses"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		PackageID:       r.PackageID,
		TimeSlotID:      r.TimeSlotID,
		DurationMinutes: r.DurationMinutes,
		Customer: createBooking.CustomerInfo{
			Email:     r.CustomerEmail,
			FirstName: r.CustomerFirstName,
			LastName:  r.CustomerLastName,
			Phone:     r.CustomerPhone,
		},
		EquipmentRequested:  r.EquipmentRequested,
		SpecialRequirements: r.SpecialRequirements,
		CustomFormResponses: r.CustomFormResponses,
	}
}

// FromUseCaseResponse конвертирует созданное бронирование в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *models.AppointmentResponse {
	return models.FromDetails(resp)
}
