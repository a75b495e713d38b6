package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/garageservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByRange(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// PolicyProvider интерфейс получения политики планирования пользователя
type PolicyProvider interface {
	GetDomain(ctx context.Context, userID int64) (*domain.SchedulingPolicy, error)
}

// GarageServiceClient интерфейс клиента для GarageService
type GarageServiceClient interface {
	GetCustomerCardWithGracefulDegradation(ctx context.Context, customerID int64) (*garageservice.CustomerCard, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
