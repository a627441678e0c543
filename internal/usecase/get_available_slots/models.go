package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	StudioID  uuid.UUID  // ID студии
	PackageID *uuid.UUID // Фильтр по пакету (опционально)
	DateFrom  *time.Time // Начало периода включительно (по умолчанию сегодня)
	DateTo    *time.Time // Конец периода включительно (по умолчанию DateFrom + 30 дней)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	StudioID  uuid.UUID
	PackageID *uuid.UUID
	DateFrom  time.Time
	DateTo    time.Time
	Slots     []domain.AvailableSlot // Отсортированы по дате и времени начала
}
