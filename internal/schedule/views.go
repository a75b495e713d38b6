package schedule

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Granularity selects which projection of the booking set is produced
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity validates a granularity string
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityDay, GranularityWeek, GranularityMonth:
		return Granularity(s), nil
	default:
		return "", ErrUnknownGranularity
	}
}

// SlotView is a rendered slot: the slot itself plus its temporal class and
// conflict-display flags
type SlotView struct {
	domain.TimeSlot
	Class TemporalClass
	// Overlapping is set when more than one booking shares the slot and the
	// policy's display toggle is on; it never blocks anything
	Overlapping bool
	// Overbooked is set when occupancy exceeds MaxAppointmentsPerSlot
	Overbooked bool
}

// DayView is one linear slot sequence for a single calendar day
type DayView struct {
	Date  time.Time
	Slots []SlotView
}

// CurrentTimeMark positions the shared "current time" indicator within a
// week view. Computed once per projection; each column renders it at the
// same vertical offset, only DayIndex marks today's column.
type CurrentTimeMark struct {
	Time time.Time
	// DayIndex is the 0-based column of now's day, -1 when now's day is
	// outside the projected week
	DayIndex int
	// Offset is now's position within working hours, clamped to [0, 1]
	Offset float64
}

// WeekView is seven independently generated day columns, Sunday-start
type WeekView struct {
	WeekStart time.Time
	Days      []DayView
	Now       CurrentTimeMark
}

// MonthCell is one day cell of the month grid. Bookings are aggregated by
// day membership only (start_time's date); there is no hour granularity.
type MonthCell struct {
	Date time.Time
	// InMonth is false for leading/trailing cells of adjacent months,
	// rendered for grid completeness only; such cells never carry bookings
	InMonth  bool
	Class    DayClass
	Bookings []*domain.Booking
}

// MonthView is the full month grid: 6 rows of 7 cells starting from the
// Sunday on or before the 1st
type MonthView struct {
	Year  int
	Month time.Month
	Cells []MonthCell
}

// ViewModel is the tagged result of a projection; exactly one of Day, Week,
// Month is set, matching Granularity
type ViewModel struct {
	Granularity Granularity
	Day         *DayView
	Week        *WeekView
	Month       *MonthView
}
