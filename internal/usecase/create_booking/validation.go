package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PackageID == uuid.Nil {
		return fmt.Errorf("%w: package_id is required", ErrInvalidInput)
	}

	if req.TimeSlotID == uuid.Nil {
		return fmt.Errorf("%w: time_slot_id is required", ErrInvalidInput)
	}

	if !strings.Contains(req.Customer.Email, "@") {
		return fmt.Errorf("%w: customer email is invalid", ErrInvalidInput)
	}

	if err := validateName("first_name", req.Customer.FirstName); err != nil {
		return err
	}
	if err := validateName("last_name", req.Customer.LastName); err != nil {
		return err
	}

	if req.Customer.Phone != nil && len(*req.Customer.Phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone must be at most %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.DurationMinutes != nil {
		d := *req.DurationMinutes
		if d < domain.MinRequestedDurationMinutes || d > domain.MaxRequestedDurationMinutes {
			return fmt.Errorf("%w: duration_minutes must be between %d and %d",
				ErrInvalidInput, domain.MinRequestedDurationMinutes, domain.MaxRequestedDurationMinutes)
		}
	}

	return nil
}

func validateName(field, value string) error {
	n := len([]rune(strings.TrimSpace(value)))
	if n == 0 || n > domain.MaxNameLength {
		return fmt.Errorf("%w: %s must be 1..%d characters", ErrInvalidInput, field, domain.MaxNameLength)
	}
	return nil
}

// validateSlot проверяет, что слот можно бронировать этим пакетом
// Порядок проверок важен: сначала доступность (Unavailable), потом совместимость (Conflict)
func validateSlot(slot *domain.Slot, pkg *domain.Package, today time.Time) error {
	if slot.StudioID != pkg.StudioID || !slot.IsBookableOn(today) {
		return ErrSlotNotAvailable
	}

	if !slot.AcceptsPackage(pkg.ID) {
		return ErrSlotPackageMismatch
	}

	return nil
}

// validateBookingWindow проверяет минимальный срок уведомления и горизонт бронирования пакета
// now - текущее время, loc - часовой пояс студии
func validateBookingWindow(slot *domain.Slot, pkg *domain.Package, now time.Time, loc *time.Location) error {
	startsAt, err := slot.StartsAt(loc)
	if err != nil {
		return fmt.Errorf("%w: failed to calculate slot start: %v", ErrInternal, err)
	}

	earliest := now.Add(time.Duration(pkg.MinBookingNoticeHours) * time.Hour)
	if startsAt.Before(earliest) {
		return fmt.Errorf("%w: must book at least %d hours in advance", ErrOutsideBookingWindow, pkg.MinBookingNoticeHours)
	}

	if pkg.MaxBookingDaysAhead > 0 {
		localNow := now.In(loc)
		latest := domain.DateOnly(localNow).AddDate(0, 0, pkg.MaxBookingDaysAhead)
		if domain.DateOnly(startsAt).After(latest) {
			return fmt.Errorf("%w: can only book %d days in advance", ErrOutsideBookingWindow, pkg.MaxBookingDaysAhead)
		}
	}

	return nil
}

// loadLocation часовой пояс студии, при ошибке - UTC
func loadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
