package get_available_slots

import (
	"errors"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

var (
	// ErrStudioNotFound возвращается, когда студия не найдена или неактивна
	ErrStudioNotFound = domain.NewError("get_available_slots: studio not found", domain.ErrNotFound)

	// ErrPackageNotFound возвращается, когда пакет из фильтра не найден, неактивен или не публичный
	ErrPackageNotFound = domain.NewError("get_available_slots: package not found", domain.ErrNotFound)

	// ErrInvalidDateRange возвращается, когда date_to раньше date_from
	ErrInvalidDateRange = domain.NewError("get_available_slots: invalid date range", domain.ErrInvalidRequest)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError("get_available_slots: invalid input data", domain.ErrInvalidRequest)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
