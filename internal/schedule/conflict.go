package schedule

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Proposal is a booking proposal under conflict evaluation
type Proposal struct {
	Start        time.Time
	End          time.Time
	TechnicianID *int64 // nil = unassigned, conflicts with every technician
}

// Evaluate arbitrates a booking proposal against an existing booking snapshot
// under the policy's conflict mode.
//
// Each active existing booking occupies its padded interval
// [start - BufferBeforeMinutes, end + BufferAfterMinutes]; the proposal
// conflicts with it when the intervals intersect under the half-open test.
// Padding is used only here, never for rendering.
//
// Technician scoping: when the proposal names a technician, only bookings of
// that technician (or unassigned ones) count as conflicts; cross-technician
// overlaps are never conflicts. Slot capacity, by contrast, is shop-wide.
//
// Modes:
//   - block: any conflict, or slot occupancy at MaxAppointmentsPerSlot,
//     yields Blocked = true
//   - warn:  overlaps are recorded but never block
//   - allow: enforcement is skipped; Overlaps is still computed for display
//     when ShowOverlappingBookings is set
//
// The verdict is advisory pre-validation over a caller-supplied snapshot.
// Two concurrent clients can both receive a non-blocked verdict for the same
// slot; true exclusivity belongs to the persistence layer.
func Evaluate(proposed Proposal, existing []*domain.Booking, policy *domain.SchedulingPolicy) (*domain.ConflictVerdict, error) {
	if policy == nil {
		return nil, ErrNilPolicy
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if proposed.Start.IsZero() {
		return nil, &domain.ValidationError{Field: "start_time", Reason: "is required"}
	}
	if !proposed.End.After(proposed.Start) {
		return nil, &domain.ValidationError{Field: "end_time", Reason: "must be after start_time"}
	}

	bufferBefore := time.Duration(policy.BufferBeforeMinutes) * time.Minute
	bufferAfter := time.Duration(policy.BufferAfterMinutes) * time.Minute

	conflicting := make([]*domain.Booking, 0)
	for _, b := range existing {
		if !b.IsActive() {
			continue
		}
		if !sameTechnicianScope(proposed.TechnicianID, b.TechnicianID) {
			continue
		}
		paddedStart := b.StartTime.Add(-bufferBefore)
		paddedEnd := b.EndTime.Add(bufferAfter)
		if intervalsOverlap(proposed.Start, proposed.End, paddedStart, paddedEnd) {
			conflicting = append(conflicting, b)
		}
	}

	verdict := &domain.ConflictVerdict{}

	switch policy.ConflictMode {
	case domain.ConflictModeAllow:
		// Enforcement skipped entirely; overlap info is display-only
		if policy.ShowOverlappingBookings {
			verdict.Overlaps = len(conflicting) > 0
			verdict.ConflictingBookings = conflicting
		}
		return verdict, nil

	case domain.ConflictModeWarn:
		verdict.Overlaps = len(conflicting) > 0
		verdict.ConflictingBookings = conflicting
		return verdict, nil

	case domain.ConflictModeBlock:
		verdict.Overlaps = len(conflicting) > 0
		verdict.ConflictingBookings = conflicting
		// Capacity is counted over real (unpadded) occupancy of the proposed
		// interval, across all technicians
		occupancy := countOccupancy(proposed.Start, proposed.End, existing)
		verdict.Blocked = verdict.Overlaps || occupancy >= policy.MaxAppointmentsPerSlot
		return verdict, nil
	}

	return nil, &domain.ValidationError{Field: "conflict_mode", Reason: "must be one of block, warn, allow"}
}

// countOccupancy counts active bookings whose real interval intersects
// [start, end), regardless of technician
func countOccupancy(start, end time.Time, bookings []*domain.Booking) int {
	count := 0
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if intervalsOverlap(b.StartTime, b.EndTime, start, end) {
			count++
		}
	}
	return count
}

// sameTechnicianScope reports whether a booking is in conflict scope for the
// proposal. An unassigned proposal or an unassigned booking is shop-wide.
func sameTechnicianScope(proposed, existing *int64) bool {
	if proposed == nil || existing == nil {
		return true
	}
	return *proposed == *existing
}
