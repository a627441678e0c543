package get_available_slots

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StudioID == uuid.Nil {
		return fmt.Errorf("%w: studio_id is required", ErrInvalidInput)
	}

	if req.PackageID != nil && *req.PackageID == uuid.Nil {
		return fmt.Errorf("%w: package_id must not be empty", ErrInvalidInput)
	}

	return nil
}

// resolveRange подставляет значения по умолчанию и проверяет период
func resolveRange(req *Request, today time.Time, defaultDays int) (time.Time, time.Time, error) {
	from := today
	if req.DateFrom != nil {
		from = domain.DateOnly(*req.DateFrom)
	}

	to := from.AddDate(0, 0, defaultDays)
	if req.DateTo != nil {
		to = domain.DateOnly(*req.DateTo)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: date_to %s is before date_from %s",
			ErrInvalidDateRange, to.Format(domain.DateFormat), from.Format(domain.DateFormat))
	}

	return from, to, nil
}
