package domain

import "time"

// ConflictMode governs how an overlapping booking proposal is treated
type ConflictMode string

const (
	// ConflictModeBlock rejects overlapping proposals before submission
	ConflictModeBlock ConflictMode = "block"
	// ConflictModeWarn records overlaps but lets the proposal through
	ConflictModeWarn ConflictMode = "warn"
	// ConflictModeAllow skips conflict enforcement entirely
	ConflictModeAllow ConflictMode = "allow"
)

// SchedulingPolicy is the immutable configuration a scheduling computation runs under.
// Loaded once per session from profile storage and reloaded on settings save;
// never mutated mid-computation.
type SchedulingPolicy struct {
	ID     int64
	UserID *int64 // nil = shop-wide default policy

	WorkingHoursStart int // hour of day, 0..23
	WorkingHoursEnd   int // hour of day, 1..24, must be > WorkingHoursStart

	TimeIncrementMinutes int // 15, 30 or 60
	BufferBeforeMinutes  int // 0, 15, 30 or 60
	BufferAfterMinutes   int // 0, 15, 30 or 60

	MaxAppointmentsPerSlot int
	ConflictMode           ConflictMode

	// ShowOverlappingBookings is a rendering toggle only; enforcement is
	// governed exclusively by ConflictMode. The two are independent axes.
	ShowOverlappingBookings bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the policy against the enumerated value sets.
// Returns a *ValidationError naming the offending field.
func (p *SchedulingPolicy) Validate() error {
	if p.WorkingHoursStart < 0 || p.WorkingHoursStart > 23 {
		return &ValidationError{Field: "working_hours_start", Reason: "must be an hour of day between 0 and 23"}
	}
	if p.WorkingHoursEnd < 0 || p.WorkingHoursEnd > 24 {
		return &ValidationError{Field: "working_hours_end", Reason: "must be an hour of day between 0 and 24"}
	}
	if p.WorkingHoursEnd < p.WorkingHoursStart {
		return &ValidationError{Field: "working_hours_end", Reason: "must not be before working_hours_start"}
	}
	if !validIncrement(p.TimeIncrementMinutes) {
		return &ValidationError{Field: "time_increment_minutes", Reason: "must be one of 15, 30, 60"}
	}
	if !validBuffer(p.BufferBeforeMinutes) {
		return &ValidationError{Field: "buffer_before_minutes", Reason: "must be one of 0, 15, 30, 60"}
	}
	if !validBuffer(p.BufferAfterMinutes) {
		return &ValidationError{Field: "buffer_after_minutes", Reason: "must be one of 0, 15, 30, 60"}
	}
	if p.MaxAppointmentsPerSlot < MinAppointmentsPerSlot {
		return &ValidationError{Field: "max_appointments_per_slot", Reason: "must be at least 1"}
	}
	switch p.ConflictMode {
	case ConflictModeBlock, ConflictModeWarn, ConflictModeAllow:
	default:
		return &ValidationError{Field: "conflict_mode", Reason: "must be one of block, warn, allow"}
	}
	return nil
}

// IsShopDefault returns true if this is the shop-wide default policy
func (p *SchedulingPolicy) IsShopDefault() bool {
	return p.UserID == nil
}

// WorkingMinutes returns the length of the working day in minutes
func (p *SchedulingPolicy) WorkingMinutes() int {
	return (p.WorkingHoursEnd - p.WorkingHoursStart) * 60
}

// SlotsPerDay returns how many slots the policy produces per day
func (p *SchedulingPolicy) SlotsPerDay() int {
	if p.TimeIncrementMinutes <= 0 {
		return 0
	}
	return p.WorkingMinutes() / p.TimeIncrementMinutes
}

// DefaultSchedulingPolicy returns the built-in policy used when profile
// storage has no row for the user and no shop default
func DefaultSchedulingPolicy() *SchedulingPolicy {
	return &SchedulingPolicy{
		WorkingHoursStart:       DefaultWorkingHoursStart,
		WorkingHoursEnd:         DefaultWorkingHoursEnd,
		TimeIncrementMinutes:    DefaultTimeIncrementMinutes,
		BufferBeforeMinutes:     DefaultBufferMinutes,
		BufferAfterMinutes:      DefaultBufferMinutes,
		MaxAppointmentsPerSlot:  DefaultMaxAppointmentsPerSlot,
		ConflictMode:            ConflictModeWarn,
		ShowOverlappingBookings: true,
	}
}

func validIncrement(minutes int) bool {
	switch minutes {
	case 15, 30, 60:
		return true
	default:
		return false
	}
}

func validBuffer(minutes int) bool {
	switch minutes {
	case 0, 15, 30, 60:
		return true
	default:
		return false
	}
}
