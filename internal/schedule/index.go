package schedule

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// BookingIndex organizes a flat booking snapshot by calendar day.
// A booking belongs to exactly one day: the date of its StartTime.
// The index is immutable; callers rebuild it from a fresh snapshot after
// any external create, update or delete.
type BookingIndex struct {
	byDay map[string][]*domain.Booking
	total int
}

// NewBookingIndex builds an index over the snapshot. Bookings within each
// day are sorted ascending by StartTime. Construction is O(n log n).
func NewBookingIndex(bookings []*domain.Booking) *BookingIndex {
	ix := &BookingIndex{
		byDay: make(map[string][]*domain.Booking),
		total: len(bookings),
	}

	for _, b := range bookings {
		key := dayKey(b.StartTime)
		ix.byDay[key] = append(ix.byDay[key], b)
	}

	for _, day := range ix.byDay {
		sort.Slice(day, func(i, j int) bool {
			return day[i].StartTime.Before(day[j].StartTime)
		})
	}

	return ix
}

// ForDay returns the bookings whose StartTime falls on the given calendar
// day, sorted ascending by StartTime. Returns an empty slice for a day with
// no data; absence of data is a valid state, not an error.
func (ix *BookingIndex) ForDay(date time.Time) []*domain.Booking {
	return ix.byDay[dayKey(date)]
}

// ForRange returns the bookings of all days in [from, to] (inclusive,
// date-level), in day order then StartTime order. O(k) in matched bookings.
func (ix *BookingIndex) ForRange(from, to time.Time) []*domain.Booking {
	result := make([]*domain.Booking, 0)
	for d := dateOnly(from); !d.After(dateOnly(to)); d = d.AddDate(0, 0, 1) {
		result = append(result, ix.byDay[dayKey(d)]...)
	}
	return result
}

// Size returns the number of indexed bookings
func (ix *BookingIndex) Size() int {
	return ix.total
}

func dayKey(t time.Time) string {
	return t.Format(domain.DateFormat)
}

// dateOnly truncates t to midnight in its own location
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// sameDay reports whether two instants fall on the same calendar day
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// intervalsOverlap is the half-open overlap test shared by the whole core:
// [aStart, aEnd) intersects [bStart, bEnd) only under strict inequalities,
// so a booking ending exactly when another begins is not an overlap.
func intervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
