package policy

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// PolicyRepository интерфейс репозитория политик планирования
type PolicyRepository interface {
	GetWithFallback(ctx context.Context, userID int64) (*domain.SchedulingPolicy, error)
	Upsert(ctx context.Context, policy *domain.SchedulingPolicy) (*domain.SchedulingPolicy, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
