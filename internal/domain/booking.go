package domain

import "time"

// BookingStatus represents the status of a work-order booking
type BookingStatus string

const (
	StatusScheduled  BookingStatus = "scheduled"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// Booking represents a scheduled repair-shop appointment.
// The scheduling core only reads bookings; all mutations go through
// status transitions owned by the service layer.
type Booking struct {
	ID           int64
	UserID       int64 // manager who created the booking
	CustomerID   int64
	TechnicianID *int64 // nil = not assigned to a specific technician
	StartTime    time.Time
	EndTime      time.Time
	Status       BookingStatus

	// Denormalized display metadata captured at creation
	CustomerName        string
	VehicleBrand        *string
	VehicleModel        *string
	VehicleLicensePlate *string
	Notes               *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies calendar time
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsTerminal returns true if the booking reached a terminal status
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusScheduled
}

// CanTransitionTo reports whether the status state machine permits the transition:
// scheduled -> in_progress -> completed, scheduled -> cancelled.
// completed and cancelled are terminal.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusScheduled:
		return next == StatusInProgress || next == StatusCancelled
	case StatusInProgress:
		return next == StatusCompleted
	default:
		return false
	}
}

// Duration returns the booked interval length
func (b *Booking) Duration() time.Duration {
	return b.EndTime.Sub(b.StartTime)
}

// ValidStatus reports whether s is one of the enumerated booking statuses
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// BookingsFilter is the repository filter for listing bookings
type BookingsFilter struct {
	From            *time.Time     // start of the date window (inclusive), nil = unbounded
	To              *time.Time     // end of the date window (inclusive), nil = unbounded
	TechnicianID    *int64         // nil = all technicians
	Status          *BookingStatus // nil = any status
	IncludeInactive bool           // include cancelled bookings
}
