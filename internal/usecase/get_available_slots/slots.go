package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-StudioBookingService/internal/domain"
)

// toAvailableSlots переводит слоты в ответ с ценой и свободными местами.
// pkg может быть nil: тогда цена берется только из override_price слота, иначе 0
func toAvailableSlots(slots []*domain.Slot, pkg *domain.Package) []domain.AvailableSlot {
	result := make([]domain.AvailableSlot, 0, len(slots))
	for _, s := range slots {
		result = append(result, domain.AvailableSlot{
			ID:                s.ID,
			Date:              s.Date,
			StartTime:         s.StartTime,
			EndTime:           s.EndTime,
			AvailableCapacity: s.AvailableCapacity(),
			Price:             s.ResolvePrice(pkg),
		})
	}
	return result
}

// filterByBookingWindow оставляет слоты, которые начинаются не раньше now + min_booking_notice_hours
// и не позже max_booking_days_ahead дней от сегодняшней даты студии
func filterByBookingWindow(slots []*domain.Slot, pkg *domain.Package, now time.Time, loc *time.Location) []*domain.Slot {
	earliest := now.Add(time.Duration(pkg.MinBookingNoticeHours) * time.Hour)

	var latest time.Time
	if pkg.MaxBookingDaysAhead > 0 {
		latest = domain.DateOnly(now.In(loc)).AddDate(0, 0, pkg.MaxBookingDaysAhead)
	}

	result := make([]*domain.Slot, 0, len(slots))
	for _, s := range slots {
		startsAt, err := s.StartsAt(loc)
		if err != nil || startsAt.Before(earliest) {
			continue
		}
		if !latest.IsZero() && domain.DateOnly(startsAt).After(latest) {
			continue
		}
		result = append(result, s)
	}
	return result
}

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
