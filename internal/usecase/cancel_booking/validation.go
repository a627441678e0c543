package cancel_booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID == uuid.Nil {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: customer_email is required", ErrInvalidInput)
	}

	if req.Reason != nil && len([]rune(*req.Reason)) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: reason must be at most %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	return nil
}

// checkCancellable проверяет статус до транзакции
func checkCancellable(a *domain.Appointment) error {
	switch {
	case a.CanBeCancelled():
		return nil
	case a.IsCancelled():
		return ErrAlreadyCancelled
	default:
		return ErrBookingFinished
	}
}
