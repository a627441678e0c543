package domain

// Default values
const (
	DefaultAvailabilityWindowDays = 30 // date_to = date_from + 30 дней, если не указано
	DefaultBookingWindowDays      = 30
	DefaultMinBookingNoticeHours  = 24
	DefaultMaxBookingDaysAhead    = 90
	DefaultCurrency               = "USD"
	DefaultTimezone               = "UTC"
)

// Business validation constants
const (
	MinRequestedDurationMinutes = 15
	MaxRequestedDurationMinutes = 480 // 8 hours
	MaxNameLength               = 100
	MaxPhoneLength              = 20
	MaxSpecialRequirementsLen   = 2000
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CancellableStatuses статусы, из которых разрешена отмена
var CancellableStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}
