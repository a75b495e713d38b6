package schedule

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// GenerateDaySlots produces the ordered slot sequence for one calendar day
// under the given policy. Slots start at WorkingHoursStart:00, are exactly
// TimeIncrementMinutes long, contiguous and non-overlapping, and no slot
// runs past WorkingHoursEnd. A policy with equal start and end hours yields
// an empty sequence.
//
// Each slot carries the active bookings from the index whose [start, end)
// intersects it. Cancelled bookings never occupy a slot.
func GenerateDaySlots(date time.Time, policy *domain.SchedulingPolicy, index *BookingIndex) ([]domain.TimeSlot, error) {
	if policy == nil {
		return nil, ErrNilPolicy
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	day := dateOnly(date)
	workStart := day.Add(time.Duration(policy.WorkingHoursStart) * time.Hour)
	workEnd := day.Add(time.Duration(policy.WorkingHoursEnd) * time.Hour)
	increment := time.Duration(policy.TimeIncrementMinutes) * time.Minute

	slots := make([]domain.TimeSlot, 0, policy.SlotsPerDay())

	var dayBookings []*domain.Booking
	if index != nil {
		dayBookings = index.ForDay(day)
	}

	for cur := workStart; ; cur = cur.Add(increment) {
		slotEnd := cur.Add(increment)
		if slotEnd.After(workEnd) {
			break
		}
		slots = append(slots, domain.TimeSlot{
			Start:    cur,
			End:      slotEnd,
			Bookings: bookingsInInterval(dayBookings, cur, slotEnd),
		})
	}

	return slots, nil
}

// bookingsInInterval filters active bookings intersecting [start, end)
func bookingsInInterval(bookings []*domain.Booking, start, end time.Time) []*domain.Booking {
	matched := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if intervalsOverlap(b.StartTime, b.EndTime, start, end) {
			matched = append(matched, b)
		}
	}
	return matched
}
