package domain

import "time"

// TimeSlot is a fixed-length interval of working time, the atomic display
// unit of day and week views. Derived, never persisted; regenerated on
// every view render.
type TimeSlot struct {
	Start    time.Time
	End      time.Time
	Bookings []*Booking // bookings whose [start, end) intersects the slot
}

// IsEmpty returns true if no booking occupies the slot
func (s *TimeSlot) IsEmpty() bool {
	return len(s.Bookings) == 0
}

// IsOverbooked returns true if more bookings occupy the slot than the policy allows
func (s *TimeSlot) IsOverbooked(maxAppointmentsPerSlot int) bool {
	return len(s.Bookings) > maxAppointmentsPerSlot
}

// HasOverlap returns true if more than one booking occupies the slot
func (s *TimeSlot) HasOverlap() bool {
	return len(s.Bookings) > 1
}
