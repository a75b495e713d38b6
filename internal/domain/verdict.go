package domain

// ConflictVerdict is the transient result of evaluating a booking proposal
// against existing bookings. Consumed by the caller immediately before
// submission; never persisted.
//
// The verdict is advisory only: it is computed against a caller-supplied
// snapshot and cannot guarantee exclusivity against concurrent writers.
// The persistence layer is the authority on serialization.
type ConflictVerdict struct {
	Overlaps            bool
	Blocked             bool
	ConflictingBookings []*Booking
}
