package schedule

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

const (
	daysPerWeek    = 7
	monthGridRows  = 6
	monthGridCells = monthGridRows * daysPerWeek
)

// Project combines slot generation, the booking index and temporal
// classification into a render-ready view model for the requested
// granularity. The booking snapshot and policy are read-only inputs;
// the projector holds no state between calls.
//
// A date or range with no bookings projects to an empty view: absence of
// data is a valid state, never an error.
func Project(granularity Granularity, date time.Time, bookings []*domain.Booking, policy *domain.SchedulingPolicy, now time.Time) (*ViewModel, error) {
	if policy == nil {
		return nil, ErrNilPolicy
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	index := NewBookingIndex(bookings)

	switch granularity {
	case GranularityDay:
		day, err := buildDayView(date, policy, index, now)
		if err != nil {
			return nil, err
		}
		return &ViewModel{Granularity: GranularityDay, Day: day}, nil

	case GranularityWeek:
		week, err := buildWeekView(date, policy, index, now)
		if err != nil {
			return nil, err
		}
		return &ViewModel{Granularity: GranularityWeek, Week: week}, nil

	case GranularityMonth:
		return &ViewModel{Granularity: GranularityMonth, Month: buildMonthView(date, index, now)}, nil

	default:
		return nil, ErrUnknownGranularity
	}
}

// ViewRange returns the inclusive date window a granularity renders around
// the given date. Callers use it to fetch exactly the bookings the view needs:
// one day, a Sunday-start week, or the full 6-week month grid.
func ViewRange(granularity Granularity, date time.Time) (from, to time.Time, err error) {
	switch granularity {
	case GranularityDay:
		d := dateOnly(date)
		return d, d, nil

	case GranularityWeek:
		start := weekStart(date)
		return start, start.AddDate(0, 0, daysPerWeek-1), nil

	case GranularityMonth:
		firstOfMonth := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
		gridStart := weekStart(firstOfMonth)
		return gridStart, gridStart.AddDate(0, 0, monthGridCells-1), nil

	default:
		return time.Time{}, time.Time{}, ErrUnknownGranularity
	}
}

func buildDayView(date time.Time, policy *domain.SchedulingPolicy, index *BookingIndex, now time.Time) (*DayView, error) {
	slots, err := GenerateDaySlots(date, policy, index)
	if err != nil {
		return nil, err
	}

	views := make([]SlotView, len(slots))
	for i, slot := range slots {
		views[i] = SlotView{
			TimeSlot:    slot,
			Class:       Classify(slot.Start, slot.End, now),
			Overlapping: policy.ShowOverlappingBookings && slot.HasOverlap(),
			Overbooked:  slot.IsOverbooked(policy.MaxAppointmentsPerSlot),
		}
	}

	return &DayView{Date: dateOnly(date), Slots: views}, nil
}

func buildWeekView(date time.Time, policy *domain.SchedulingPolicy, index *BookingIndex, now time.Time) (*WeekView, error) {
	start := weekStart(date)

	days := make([]DayView, 0, daysPerWeek)
	for i := 0; i < daysPerWeek; i++ {
		day, err := buildDayView(start.AddDate(0, 0, i), policy, index, now)
		if err != nil {
			return nil, err
		}
		days = append(days, *day)
	}

	return &WeekView{
		WeekStart: start,
		Days:      days,
		Now:       currentTimeMark(start, policy, now),
	}, nil
}

func buildMonthView(date time.Time, index *BookingIndex, now time.Time) *MonthView {
	firstOfMonth := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	gridStart := weekStart(firstOfMonth)

	cells := make([]MonthCell, 0, monthGridCells)
	for i := 0; i < monthGridCells; i++ {
		day := gridStart.AddDate(0, 0, i)
		cell := MonthCell{
			Date:    day,
			InMonth: day.Month() == firstOfMonth.Month(),
			Class:   ClassifyDay(day, now),
		}
		// Out-of-month cells exist for grid completeness only and never
		// aggregate the adjacent month's bookings
		if cell.InMonth {
			cell.Bookings = activeOnly(index.ForDay(day))
		}
		cells = append(cells, cell)
	}

	return &MonthView{
		Year:  firstOfMonth.Year(),
		Month: firstOfMonth.Month(),
		Cells: cells,
	}
}

// currentTimeMark computes the single shared "current time" indicator for a
// week. The offset is now's fraction of the working day, clamped to [0, 1].
func currentTimeMark(weekStartDate time.Time, policy *domain.SchedulingPolicy, now time.Time) CurrentTimeMark {
	mark := CurrentTimeMark{Time: now, DayIndex: -1}

	dayOffset := int(dateOnly(now).Sub(weekStartDate).Hours() / 24)
	if dayOffset >= 0 && dayOffset < daysPerWeek {
		mark.DayIndex = dayOffset
	}

	workingMinutes := policy.WorkingMinutes()
	if workingMinutes == 0 {
		return mark
	}

	dayStart := dateOnly(now).Add(time.Duration(policy.WorkingHoursStart) * time.Hour)
	elapsed := now.Sub(dayStart).Minutes()
	mark.Offset = clamp(elapsed/float64(workingMinutes), 0, 1)

	return mark
}

// weekStart returns the Sunday on or before the given date (weeks are
// Sunday-start)
func weekStart(date time.Time) time.Time {
	d := dateOnly(date)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

func activeOnly(bookings []*domain.Booking) []*domain.Booking {
	result := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			result = append(result, b)
		}
	}
	return result
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
