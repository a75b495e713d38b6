package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	policyRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/policy"
	"github.com/m04kA/SMC-ScheduleService/internal/service/policy/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

type fakeRepo struct {
	policy *domain.SchedulingPolicy
	getErr error

	upserted *domain.SchedulingPolicy
}

func (r *fakeRepo) GetWithFallback(_ context.Context, _ int64) (*domain.SchedulingPolicy, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.policy, nil
}

func (r *fakeRepo) Upsert(_ context.Context, policy *domain.SchedulingPolicy) (*domain.SchedulingPolicy, error) {
	r.upserted = policy
	saved := *policy
	saved.ID = 7
	return &saved, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validRequest() *models.SavePolicyRequest {
	return &models.SavePolicyRequest{
		UserID:                  1,
		WorkingHoursStart:       8,
		WorkingHoursEnd:         18,
		TimeIncrementMinutes:    30,
		BufferBeforeMinutes:     15,
		BufferAfterMinutes:      15,
		MaxAppointmentsPerSlot:  2,
		ConflictMode:            "block",
		ShowOverlappingBookings: true,
	}
}

func TestGet_StoredPolicy(t *testing.T) {
	repo := &fakeRepo{
		policy: &domain.SchedulingPolicy{
			ID:                     3,
			UserID:                 ptr.Ptr(int64(1)),
			WorkingHoursStart:      9,
			WorkingHoursEnd:        17,
			TimeIncrementMinutes:   60,
			MaxAppointmentsPerSlot: 1,
			ConflictMode:           domain.ConflictModeBlock,
		},
	}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, 9, resp.WorkingHoursStart)
}

func TestGet_FallsBackToBuiltinDefault(t *testing.T) {
	// Ни политики пользователя, ни общей политики мастерской
	repo := &fakeRepo{getErr: policyRepo.ErrPolicyNotFound}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	def := domain.DefaultSchedulingPolicy()
	assert.Equal(t, def.WorkingHoursStart, resp.WorkingHoursStart)
	assert.Equal(t, def.WorkingHoursEnd, resp.WorkingHoursEnd)
	assert.Equal(t, string(def.ConflictMode), resp.ConflictMode)
	assert.Nil(t, resp.UserID)
}

func TestSave_ValidPolicy(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.Save(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.ID)

	require.NotNil(t, repo.upserted)
	require.NotNil(t, repo.upserted.UserID)
	assert.Equal(t, int64(1), *repo.upserted.UserID)
}

func TestSave_RejectsInvalidPolicyWhole(t *testing.T) {
	// Невалидное поле отклоняет политику целиком: до репозитория запрос
	// не доходит
	tests := []struct {
		name   string
		mutate func(*models.SavePolicyRequest)
	}{
		{"bad increment", func(r *models.SavePolicyRequest) { r.TimeIncrementMinutes = 45 }},
		{"bad buffer", func(r *models.SavePolicyRequest) { r.BufferBeforeMinutes = 10 }},
		{"end before start", func(r *models.SavePolicyRequest) { r.WorkingHoursStart = 18; r.WorkingHoursEnd = 8 }},
		{"zero capacity", func(r *models.SavePolicyRequest) { r.MaxAppointmentsPerSlot = 0 }},
		{"bad mode", func(r *models.SavePolicyRequest) { r.ConflictMode = "strict" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := NewService(repo, noopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := svc.Save(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, repo.upserted)
		})
	}
}
