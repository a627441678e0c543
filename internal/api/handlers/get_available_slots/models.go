package get_available_slots

import (
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-StudioBookingService/internal/usecase/get_available_slots"
)

// AvailableSlot HTTP response model
type AvailableSlot struct {
	ID                uuid.UUID `json:"id"`
	Date              string    `json:"date"`       // "2026-06-10"
	StartTime         string    `json:"start_time"` // "10:00"
	EndTime           string    `json:"end_time"`
	AvailableCapacity int       `json:"available_capacity"`
	Price             float64   `json:"price"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response (список слотов без обертки)
func FromUseCaseResponse(resp *getAvailableSlots.Response) []AvailableSlot {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:                slot.ID,
			Date:              slot.Date.Format(domain.DateFormat),
			StartTime:         slot.StartTime.String(),
			EndTime:           slot.EndTime.String(),
			AvailableCapacity: slot.AvailableCapacity,
			Price:             slot.Price,
		}
	}
	return slots
}

// queryError ошибка разбора query параметра
type queryError struct {
	param string
	err   error
}

func (e *queryError) Error() string { return e.param + ": " + e.err.Error() }
func (e *queryError) Unwrap() error { return e.err }

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(studioID uuid.UUID, query url.Values) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{StudioID: studioID}

	if v := query.Get("package_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, &queryError{param: "package_id", err: err}
		}
		req.PackageID = &id
	}

	if v := query.Get("date_from"); v != "" {
		d, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, &queryError{param: "date_from", err: err}
		}
		req.DateFrom = &d
	}

	if v := query.Get("date_to"); v != "" {
		d, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, &queryError{param: "date_to", err: err}
		}
		req.DateTo = &d
	}

	return req, nil
}
