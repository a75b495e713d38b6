package schedule

import "time"

// TemporalClass is the past/current/future bucket of an interval relative
// to a supplied "now"
type TemporalClass string

const (
	ClassPast    TemporalClass = "past"
	ClassCurrent TemporalClass = "current"
	ClassFuture  TemporalClass = "future"
)

// Classify buckets the interval [start, end) relative to now.
//
// current: now lies within [start, end).
// past:    the interval ended at or before now AND lies on now's own
//          calendar day. Classification is deliberately day-scoped: a slot
//          from a prior day is not flagged past, it falls through to the
//          date-level rendering of its own view.
// future:  everything else.
//
// Pure function; callers re-invoke it with a fresh now on every clock tick.
func Classify(start, end, now time.Time) TemporalClass {
	if !now.Before(start) && now.Before(end) {
		return ClassCurrent
	}
	if !end.After(now) && sameDay(start, now) {
		return ClassPast
	}
	return ClassFuture
}

// DayClass is the date-level classification used by month-view cells
type DayClass string

const (
	DayPast   DayClass = "past"
	DayToday  DayClass = "today"
	DayFuture DayClass = "future"
)

// ClassifyDay buckets a calendar day relative to now's calendar day
func ClassifyDay(date, now time.Time) DayClass {
	d := dateOnly(date)
	n := dateOnly(now)
	switch {
	case d.Before(n):
		return DayPast
	case d.Equal(n):
		return DayToday
	default:
		return DayFuture
	}
}
