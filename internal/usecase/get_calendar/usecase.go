package get_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/schedule"
)

// UseCase use case для получения календарного представления
type UseCase struct {
	bookingRepo  BookingRepository
	policies     PolicyProvider
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, policies PolicyProvider, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		policies:     policies,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения календаря
// Загружает бронирования ровно на отображаемый диапазон и строит
// представление по политике пользователя
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: user=%d, granularity=%s, date=%s",
		req.UserID, req.Granularity, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	granularity, err := schedule.ParseGranularity(req.Granularity)
	if err != nil {
		uc.logger.Warn("GetCalendar: unknown granularity=%s", req.Granularity)
		return nil, fmt.Errorf("%w: %s", ErrUnknownGranularity, req.Granularity)
	}

	// 2. Вычисляем отображаемый диапазон
	from, to, err := schedule.ViewRange(granularity, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGranularity, req.Granularity)
	}

	// 3. Получаем политику планирования пользователя
	policy, err := uc.policies.GetDomain(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get policy for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	// 4. Получаем бронирования на диапазон
	// Отменённые включаем: представление само решает, что показывать
	filter := domain.BookingsFilter{
		From:            &from,
		To:              &to,
		IncludeInactive: true,
	}

	bookings, err := uc.bookingRepo.GetByRange(ctx, filter)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Строим представление
	now := uc.timeProvider.Now()

	view, err := schedule.Project(granularity, req.Date, bookings, policy, now)
	if err != nil {
		if errors.Is(err, schedule.ErrUnknownGranularity) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownGranularity, req.Granularity)
		}
		uc.logger.Error("GetCalendar: projection failed: %v", err)
		return nil, fmt.Errorf("%w: projection failed: %v", ErrInternal, err)
	}

	uc.logger.Info("GetCalendar: built %s view for user=%d, %d bookings in range %s..%s",
		granularity, req.UserID, len(bookings),
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	return &Response{
		Granularity: granularity,
		From:        from,
		To:          to,
		View:        view,
	}, nil
}
