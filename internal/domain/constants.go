package domain

// Default scheduling policy values
const (
	DefaultWorkingHoursStart      = 8
	DefaultWorkingHoursEnd        = 18
	DefaultTimeIncrementMinutes   = 30
	DefaultBufferMinutes          = 0
	DefaultMaxAppointmentsPerSlot = 1
)

// Business validation constants
const (
	MinAppointmentsPerSlot = 1
	MaxAppointmentsLimit   = 100
	MaxNotesLength         = 500
	MaxCancelReasonLength  = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses lists statuses that do not occupy calendar time.
// Used when filtering bookings for slot occupancy and conflict checks.
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses lists statuses that occupy calendar time
var ActiveStatuses = []BookingStatus{
	StatusScheduled,
	StatusInProgress,
	StatusCompleted,
}
