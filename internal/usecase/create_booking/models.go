package create_booking

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

// CustomerInfo контактные данные клиента из формы бронирования
type CustomerInfo struct {
	Email     string
	FirstName string
	LastName  string
	Phone     *string
}

// Request модель запроса на создание бронирования
type Request struct {
	PackageID           uuid.UUID              // ID пакета
	TimeSlotID          uuid.UUID              // ID слота
	DurationMinutes     *int                   // Запрошенная длительность (nil = длительность пакета)
	Customer            CustomerInfo           // Клиент
	EquipmentRequested  []string               // Запрошенное оборудование (порядок сохраняется)
	SpecialRequirements *string                // Особые пожелания
	CustomFormResponses map[string]interface{} // Ответы на кастомные вопросы пакета
}

// Response созданное бронирование вместе с клиентом, пакетом и слотом
type Response = domain.AppointmentDetails
