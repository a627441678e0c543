package bookings

import (
	"errors"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = domain.NewError("bookings.service: booking not found", domain.ErrNotFound)

	// ErrAccessDenied возвращается, когда email не совпадает с email клиента бронирования
	ErrAccessDenied = domain.NewError("bookings.service: invalid booking ID or email", domain.ErrForbidden)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError("bookings.service: invalid input data", domain.ErrInvalidRequest)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
