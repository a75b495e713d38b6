package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

func testPolicy() *domain.SchedulingPolicy {
	return &domain.SchedulingPolicy{
		WorkingHoursStart:       8,
		WorkingHoursEnd:         18,
		TimeIncrementMinutes:    30,
		BufferBeforeMinutes:     0,
		BufferAfterMinutes:      0,
		MaxAppointmentsPerSlot:  1,
		ConflictMode:            domain.ConflictModeBlock,
		ShowOverlappingBookings: true,
	}
}

func mkBooking(id int64, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusScheduled,
	}
}

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

var testDay = time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)

func TestGenerateDaySlots_FullWorkingDay(t *testing.T) {
	// 8:00-18:00 с шагом 30 минут = 20 слотов: 08:00, 08:30, ..., 17:30
	slots, err := GenerateDaySlots(testDay, testPolicy(), nil)
	require.NoError(t, err)
	require.Len(t, slots, 20)

	assert.Equal(t, at(testDay, 8, 0), slots[0].Start)
	assert.Equal(t, at(testDay, 8, 30), slots[0].End)
	assert.Equal(t, at(testDay, 17, 30), slots[19].Start)
	assert.Equal(t, at(testDay, 18, 0), slots[19].End)
}

func TestGenerateDaySlots_ContiguousNonOverlapping(t *testing.T) {
	policies := []*domain.SchedulingPolicy{
		testPolicy(),
		{WorkingHoursStart: 9, WorkingHoursEnd: 17, TimeIncrementMinutes: 15, MaxAppointmentsPerSlot: 2, ConflictMode: domain.ConflictModeWarn},
		{WorkingHoursStart: 0, WorkingHoursEnd: 24, TimeIncrementMinutes: 60, MaxAppointmentsPerSlot: 1, ConflictMode: domain.ConflictModeAllow},
	}

	for _, policy := range policies {
		slots, err := GenerateDaySlots(testDay, policy, nil)
		require.NoError(t, err)
		require.Len(t, slots, policy.SlotsPerDay())

		increment := time.Duration(policy.TimeIncrementMinutes) * time.Minute
		workStart := at(testDay, policy.WorkingHoursStart, 0)
		workEnd := testDay.Add(time.Duration(policy.WorkingHoursEnd) * time.Hour)

		for i, slot := range slots {
			assert.Equal(t, increment, slot.End.Sub(slot.Start), "slot %d length", i)
			assert.False(t, slot.Start.Before(workStart), "slot %d starts before working hours", i)
			assert.False(t, slot.End.After(workEnd), "slot %d ends after working hours", i)
			if i > 0 {
				assert.Equal(t, slots[i-1].End, slot.Start, "slot %d not contiguous", i)
			}
		}
	}
}

func TestGenerateDaySlots_EmptyWorkingHours(t *testing.T) {
	policy := testPolicy()
	policy.WorkingHoursStart = 10
	policy.WorkingHoursEnd = 10

	slots, err := GenerateDaySlots(testDay, policy, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateDaySlots_AttachesIntersectingBookings(t *testing.T) {
	// Бронирование 09:00-10:00 занимает слоты 09:00 и 09:30, но не 08:30 и не 10:00
	booking := mkBooking(1, at(testDay, 9, 0), at(testDay, 10, 0))
	index := NewBookingIndex([]*domain.Booking{booking})

	slots, err := GenerateDaySlots(testDay, testPolicy(), index)
	require.NoError(t, err)

	for _, slot := range slots {
		switch {
		case slot.Start.Equal(at(testDay, 9, 0)) || slot.Start.Equal(at(testDay, 9, 30)):
			assert.Len(t, slot.Bookings, 1, "slot %s must carry the booking", slot.Start)
		default:
			assert.Empty(t, slot.Bookings, "slot %s must be empty", slot.Start)
		}
	}
}

func TestGenerateDaySlots_SkipsCancelledBookings(t *testing.T) {
	cancelled := mkBooking(1, at(testDay, 9, 0), at(testDay, 10, 0))
	cancelled.Status = domain.StatusCancelled
	index := NewBookingIndex([]*domain.Booking{cancelled})

	slots, err := GenerateDaySlots(testDay, testPolicy(), index)
	require.NoError(t, err)

	for _, slot := range slots {
		assert.Empty(t, slot.Bookings)
	}
}

func TestGenerateDaySlots_MultiSlotBookingSpansSlots(t *testing.T) {
	// Бронирование на 2 часа попадает в 4 получасовых слота
	booking := mkBooking(1, at(testDay, 13, 0), at(testDay, 15, 0))
	index := NewBookingIndex([]*domain.Booking{booking})

	slots, err := GenerateDaySlots(testDay, testPolicy(), index)
	require.NoError(t, err)

	occupied := 0
	for _, slot := range slots {
		if len(slot.Bookings) > 0 {
			occupied++
		}
	}
	assert.Equal(t, 4, occupied)
}

func TestGenerateDaySlots_InvalidPolicy(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *domain.SchedulingPolicy)
		field  string
	}{
		{"end before start", func(p *domain.SchedulingPolicy) { p.WorkingHoursStart = 18; p.WorkingHoursEnd = 8 }, "working_hours_end"},
		{"bad increment", func(p *domain.SchedulingPolicy) { p.TimeIncrementMinutes = 45 }, "time_increment_minutes"},
		{"bad buffer", func(p *domain.SchedulingPolicy) { p.BufferBeforeMinutes = 10 }, "buffer_before_minutes"},
		{"zero capacity", func(p *domain.SchedulingPolicy) { p.MaxAppointmentsPerSlot = 0 }, "max_appointments_per_slot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			policy := testPolicy()
			tt.mutate(policy)

			_, err := GenerateDaySlots(testDay, policy, nil)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestGenerateDaySlots_TechnicianBookingStillOccupiesSlot(t *testing.T) {
	booking := mkBooking(1, at(testDay, 9, 0), at(testDay, 9, 30))
	booking.TechnicianID = ptr.Ptr(int64(7))
	index := NewBookingIndex([]*domain.Booking{booking})

	slots, err := GenerateDaySlots(testDay, testPolicy(), index)
	require.NoError(t, err)
	assert.Len(t, slots[2].Bookings, 1)
}
