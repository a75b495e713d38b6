package check_conflict

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	filter   domain.BookingsFilter
}

func (r *fakeBookingRepo) GetByRange(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.filter = filter
	return r.bookings, nil
}

type fakePolicies struct {
	policy *domain.SchedulingPolicy
}

func (p *fakePolicies) GetDomain(_ context.Context, _ int64) (*domain.SchedulingPolicy, error) {
	return p.policy, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func blockPolicy() *domain.SchedulingPolicy {
	return &domain.SchedulingPolicy{
		WorkingHoursStart:      8,
		WorkingHoursEnd:        18,
		TimeIncrementMinutes:   30,
		BufferBeforeMinutes:    0,
		BufferAfterMinutes:     15,
		MaxAppointmentsPerSlot: 1,
		ConflictMode:           domain.ConflictModeBlock,
	}
}

func existingBooking(id int64, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		ID:           id,
		UserID:       1,
		CustomerID:   42,
		CustomerName: "Иван Петров",
		StartTime:    start,
		EndTime:      end,
		Status:       domain.StatusScheduled,
	}
}

func TestExecute_NoConflicts(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, &fakePolicies{policy: blockPolicy()}, noopLogger{})

	start := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
	})
	require.NoError(t, err)

	assert.False(t, resp.Overlaps)
	assert.False(t, resp.Blocked)
	assert.Equal(t, "block", resp.ConflictMode)
	assert.Empty(t, resp.Conflicts)

	// Снимок берётся только за день начала интервала
	require.NotNil(t, repo.filter.From)
	require.NotNil(t, repo.filter.To)
	assert.Equal(t, *repo.filter.From, *repo.filter.To)
	assert.False(t, repo.filter.IncludeInactive)
}

func TestExecute_BlockedByBuffer(t *testing.T) {
	// Бронирование 09:00-10:00 с буфером после 15 минут перекрывает 10:05
	day := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			existingBooking(100, day.Add(9*time.Hour), day.Add(10*time.Hour)),
		},
	}
	uc := NewUseCase(repo, &fakePolicies{policy: blockPolicy()}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		StartTime: day.Add(10*time.Hour + 5*time.Minute),
		EndTime:   day.Add(10*time.Hour + 35*time.Minute),
	})
	require.NoError(t, err)

	assert.True(t, resp.Overlaps)
	assert.True(t, resp.Blocked)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, int64(100), resp.Conflicts[0].ID)
	assert.Equal(t, "Иван Петров", resp.Conflicts[0].CustomerName)
}

func TestExecute_WarnModeNeverBlocks(t *testing.T) {
	day := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{
		bookings: []*domain.Booking{
			existingBooking(100, day.Add(9*time.Hour), day.Add(10*time.Hour)),
		},
	}
	policy := blockPolicy()
	policy.ConflictMode = domain.ConflictModeWarn
	uc := NewUseCase(repo, &fakePolicies{policy: policy}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    1,
		StartTime: day.Add(9*time.Hour + 30*time.Minute),
		EndTime:   day.Add(10*time.Hour + 30*time.Minute),
	})
	require.NoError(t, err)

	assert.True(t, resp.Overlaps)
	assert.False(t, resp.Blocked)
	assert.Equal(t, "warn", resp.ConflictMode)
}

func TestExecute_TechnicianScoping(t *testing.T) {
	// Интервал мастера 2 не конфликтует с занятостью мастера 1
	day := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	busy := existingBooking(100, day.Add(9*time.Hour), day.Add(10*time.Hour))
	busy.TechnicianID = ptr.Ptr(int64(1))
	repo := &fakeBookingRepo{bookings: []*domain.Booking{busy}}

	policy := blockPolicy()
	policy.MaxAppointmentsPerSlot = 2
	uc := NewUseCase(repo, &fakePolicies{policy: policy}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:       1,
		TechnicianID: ptr.Ptr(int64(2)),
		StartTime:    day.Add(9 * time.Hour),
		EndTime:      day.Add(10 * time.Hour),
	})
	require.NoError(t, err)

	assert.False(t, resp.Overlaps)
	assert.False(t, resp.Blocked)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakePolicies{policy: blockPolicy()}, noopLogger{})
	start := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *Request
	}{
		{"zero user", &Request{UserID: 0, StartTime: start, EndTime: start.Add(time.Hour)}},
		{"zero start", &Request{UserID: 1, EndTime: start}},
		{"zero end", &Request{UserID: 1, StartTime: start}},
		{"end before start", &Request{UserID: 1, StartTime: start, EndTime: start.Add(-time.Hour)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
