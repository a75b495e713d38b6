package check_conflict

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// PolicyProvider интерфейс получения политики планирования пользователя
type PolicyProvider interface {
	GetDomain(ctx context.Context, userID int64) (*domain.SchedulingPolicy, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
