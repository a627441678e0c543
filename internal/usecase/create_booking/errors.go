package create_booking

import (
	"errors"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

var (
	// ErrPackageNotFound возвращается, когда пакет не найден, неактивен или не публичный
	ErrPackageNotFound = domain.NewError("create_booking: package not found or not available for booking", domain.ErrNotFound)

	// ErrSlotNotAvailable возвращается, когда слот не найден, выключен, в прошлом, заполнен
	// или был занят конкурентным запросом между проверкой и резервированием
	ErrSlotNotAvailable = domain.NewError("create_booking: time slot not available or fully booked", domain.ErrUnavailable)

	// ErrSlotPackageMismatch возвращается, когда слот закреплен за другим пакетом
	ErrSlotPackageMismatch = domain.NewError("create_booking: time slot is not available for the selected package", domain.ErrConflict)

	// ErrCustomDurationNotAllowed возвращается, когда длительность указана для пакета с фиксированной длительностью
	ErrCustomDurationNotAllowed = domain.ErrCustomDurationNotAllowed

	// ErrOutsideBookingWindow возвращается, когда слот начинается раньше минимального срока
	// уведомления или позже максимального горизонта бронирования пакета
	ErrOutsideBookingWindow = domain.NewError("create_booking: time slot is outside the package booking window", domain.ErrInvalidRequest)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError("create_booking: invalid input data", domain.ErrInvalidRequest)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
