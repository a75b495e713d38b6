package policy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

// Переиспользуем интерфейс executor из dbmetrics
type DBExecutor = dbmetrics.DBExecutor

var policyColumns = []string{
	"id",
	"user_id",
	"working_hours_start",
	"working_hours_end",
	"time_increment_minutes",
	"buffer_before_minutes",
	"buffer_after_minutes",
	"max_appointments_per_slot",
	"conflict_mode",
	"show_overlapping_bookings",
	"created_at",
	"updated_at",
}

// Repository репозиторий политик расписания
// Хранит персональные политики (user_id) и общую политику мастерской (user_id IS NULL)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория политик
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWithFallback получает политику с учетом приоритета:
// 1. Персональная политика пользователя (user_id = userID)
// 2. Общая политика мастерской (user_id IS NULL)
// Если ни одна не найдена, возвращает ErrPolicyNotFound
func (r *Repository) GetWithFallback(ctx context.Context, userID int64) (*domain.SchedulingPolicy, error) {
	policy, err := r.getByUser(ctx, &userID)
	if err == nil {
		return policy, nil
	}
	if err != ErrPolicyNotFound {
		return nil, fmt.Errorf("%w: GetWithFallback - user level: %v", ErrExecQuery, err)
	}

	policy, err = r.getByUser(ctx, nil)
	if err == nil {
		return policy, nil
	}
	if err != ErrPolicyNotFound {
		return nil, fmt.Errorf("%w: GetWithFallback - shop level: %v", ErrExecQuery, err)
	}

	return nil, ErrPolicyNotFound
}

// Upsert сохраняет политику пользователя (insert или update по user_id)
// Политика перечитывается вызывающей стороной после сохранения -
// "перезагрузка при сохранении настроек"
func (r *Repository) Upsert(ctx context.Context, policy *domain.SchedulingPolicy) (*domain.SchedulingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("scheduling_policies").
		Columns(
			"user_id",
			"working_hours_start",
			"working_hours_end",
			"time_increment_minutes",
			"buffer_before_minutes",
			"buffer_after_minutes",
			"max_appointments_per_slot",
			"conflict_mode",
			"show_overlapping_bookings",
		).
		Values(
			policy.UserID,
			policy.WorkingHoursStart,
			policy.WorkingHoursEnd,
			policy.TimeIncrementMinutes,
			policy.BufferBeforeMinutes,
			policy.BufferAfterMinutes,
			policy.MaxAppointmentsPerSlot,
			policy.ConflictMode,
			policy.ShowOverlappingBookings,
		).
		Suffix(`ON CONFLICT (user_id) WHERE user_id IS NOT NULL DO UPDATE SET
			working_hours_start = EXCLUDED.working_hours_start,
			working_hours_end = EXCLUDED.working_hours_end,
			time_increment_minutes = EXCLUDED.time_increment_minutes,
			buffer_before_minutes = EXCLUDED.buffer_before_minutes,
			buffer_after_minutes = EXCLUDED.buffer_after_minutes,
			max_appointments_per_slot = EXCLUDED.max_appointments_per_slot,
			conflict_mode = EXCLUDED.conflict_mode,
			show_overlapping_bookings = EXCLUDED.show_overlapping_bookings,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return policy, nil
}

func (r *Repository) getByUser(ctx context.Context, userID *int64) (*domain.SchedulingPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(policyColumns...).
		From("scheduling_policies")

	if userID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *userID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByUser - build select query: %v", ErrBuildQuery, err)
	}

	var policy domain.SchedulingPolicy
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&policy.ID,
		&policy.UserID,
		&policy.WorkingHoursStart,
		&policy.WorkingHoursEnd,
		&policy.TimeIncrementMinutes,
		&policy.BufferBeforeMinutes,
		&policy.BufferAfterMinutes,
		&policy.MaxAppointmentsPerSlot,
		&policy.ConflictMode,
		&policy.ShowOverlappingBookings,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPolicyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByUser - scan policy: %v", ErrScanRow, err)
	}

	policy.CreatedAt = createdAt.Time
	policy.UpdatedAt = updatedAt.Time

	return &policy, nil
}
