package cancel_booking

import (
	"errors"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = domain.NewError("cancel_booking: booking not found", domain.ErrNotFound)

	// ErrEmailMismatch возвращается, когда email не совпадает с email клиента бронирования
	ErrEmailMismatch = domain.NewError("cancel_booking: invalid booking ID or email", domain.ErrForbidden)

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = domain.NewError("cancel_booking: booking is already cancelled", domain.ErrInvalidState)

	// ErrBookingFinished возвращается для завершенных бронирований (completed, no_show)
	ErrBookingFinished = domain.NewError("cancel_booking: cannot cancel completed booking", domain.ErrInvalidState)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError("cancel_booking: invalid input data", domain.ErrInvalidRequest)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_booking: internal error")
)
