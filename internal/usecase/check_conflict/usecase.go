package check_conflict

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/schedule"
)

// UseCase use case для проверки конфликтов по предлагаемому интервалу
type UseCase struct {
	bookingRepo BookingRepository
	policies    PolicyProvider
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, policies PolicyProvider, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		policies:    policies,
		logger:      logger,
	}
}

// Execute выполняет проверку конфликтов без записи в БД
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckConflict: user=%d, start=%s, end=%s",
		req.UserID, req.StartTime.Format(domain.DateFormat+" "+domain.TimeFormat),
		req.EndTime.Format(domain.TimeFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflict: validation failed: %v", err)
		return nil, err
	}

	// Получаем политику планирования пользователя
	policy, err := uc.policies.GetDomain(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("CheckConflict: failed to get policy for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	// Получаем активные бронирования на день начала
	day := req.StartTime
	filter := domain.BookingsFilter{
		From:            &day,
		To:              &day,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByRange(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckConflict: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	verdict, err := schedule.Evaluate(schedule.Proposal{
		Start:        req.StartTime,
		End:          req.EndTime,
		TechnicianID: req.TechnicianID,
	}, bookings, policy)
	if err != nil {
		uc.logger.Error("CheckConflict: conflict evaluation failed: %v", err)
		return nil, fmt.Errorf("%w: conflict evaluation failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CheckConflict: overlaps=%t, blocked=%t, conflicts=%d",
		verdict.Overlaps, verdict.Blocked, len(verdict.ConflictingBookings))

	conflicts := make([]ConflictingBooking, 0, len(verdict.ConflictingBookings))
	for _, b := range verdict.ConflictingBookings {
		conflicts = append(conflicts, ConflictingBooking{
			ID:           b.ID,
			CustomerName: b.CustomerName,
			TechnicianID: b.TechnicianID,
			StartTime:    b.StartTime,
			EndTime:      b.EndTime,
		})
	}

	return &Response{
		Overlaps:     verdict.Overlaps,
		Blocked:      verdict.Blocked,
		ConflictMode: string(policy.ConflictMode),
		Conflicts:    conflicts,
	}, nil
}

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	return nil
}
