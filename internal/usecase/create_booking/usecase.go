package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	garageClient "github.com/m04kA/SMC-ScheduleService/internal/integrations/garageservice"
	"github.com/m04kA/SMC-ScheduleService/internal/schedule"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	policies     PolicyProvider
	garageClient GarageServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	policies PolicyProvider,
	garageClient GarageServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		policies:     policies,
		garageClient: garageClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликтов носит рекомендательный характер: снимок бронирований
// может устареть к моменту записи. Поэтому чтение снимка и вставка выполняются
// в одной сериализуемой транзакции с блокировкой строк дня (FOR UPDATE)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, customer=%d, start=%s, end=%s",
		req.UserID, req.CustomerID, req.StartTime.Format(domain.DateFormat+" "+domain.TimeFormat),
		req.EndTime.Format(domain.TimeFormat))

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем карточку клиента с graceful degradation
	// При недоступности GarageService бронирование создаётся без
	// денормализованных данных клиента
	var customerName string
	var vehicleBrand, vehicleModel, licensePlate *string

	card, err := uc.garageClient.GetCustomerCardWithGracefulDegradation(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, garageClient.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: customer id=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		// ErrServiceDegraded: продолжаем без данных клиента
		uc.logger.Warn("CreateBooking: proceeding without customer card for customer=%d: %v",
			req.CustomerID, err)
	} else {
		customerName = card.Name
		vehicleBrand = card.VehicleBrand
		vehicleModel = card.VehicleModel
		licensePlate = card.LicensePlate
	}

	var result *domain.Booking
	var conflict *ConflictInfo

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем политику планирования пользователя
		policy, err := uc.policies.GetDomain(txCtx, req.UserID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get policy for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
		}

		// 4.2. Получаем активные бронирования на день начала с блокировкой (FOR UPDATE)
		day := req.StartTime
		filter := domain.BookingsFilter{
			From:            &day,
			To:              &day,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByRange(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.3. Оцениваем конфликты по политике
		verdict, err := schedule.Evaluate(schedule.Proposal{
			Start:        req.StartTime,
			End:          req.EndTime,
			TechnicianID: req.TechnicianID,
		}, bookings, policy)
		if err != nil {
			uc.logger.Error("CreateBooking: conflict evaluation failed: %v", err)
			return fmt.Errorf("%w: conflict evaluation failed: %v", ErrInternal, err)
		}

		if verdict.Blocked {
			uc.logger.Warn("CreateBooking: slot blocked, %d conflicting bookings",
				len(verdict.ConflictingBookings))
			return ErrSlotBlocked
		}

		if verdict.Overlaps {
			uc.logger.Info("CreateBooking: %d overlapping bookings, mode=%s, proceeding",
				len(verdict.ConflictingBookings), policy.ConflictMode)
		}

		conflict = conflictInfo(verdict, policy)

		// 4.4. Создаем бронирование с денормализацией данных клиента
		booking := &domain.Booking{
			UserID:              req.UserID,
			CustomerID:          req.CustomerID,
			TechnicianID:        req.TechnicianID,
			StartTime:           req.StartTime,
			EndTime:             req.EndTime,
			Status:              domain.StatusScheduled,
			CustomerName:        customerName,
			VehicleBrand:        vehicleBrand,
			VehicleModel:        vehicleModel,
			VehicleLicensePlate: licensePlate,
			Notes:               req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:                  result.ID,
		UserID:              result.UserID,
		CustomerID:          result.CustomerID,
		TechnicianID:        result.TechnicianID,
		StartTime:           result.StartTime,
		EndTime:             result.EndTime,
		Status:              string(result.Status),
		CustomerName:        result.CustomerName,
		VehicleBrand:        result.VehicleBrand,
		VehicleModel:        result.VehicleModel,
		VehicleLicensePlate: result.VehicleLicensePlate,
		Notes:               result.Notes,
		Conflict:            conflict,
		CreatedAt:           result.CreatedAt,
		UpdatedAt:           result.UpdatedAt,
	}, nil
}

// conflictInfo собирает сведения о пересечениях для ответа
// Возвращает nil, если пересечений нет
func conflictInfo(verdict *domain.ConflictVerdict, policy *domain.SchedulingPolicy) *ConflictInfo {
	if !verdict.Overlaps {
		return nil
	}

	ids := make([]int64, 0, len(verdict.ConflictingBookings))
	for _, b := range verdict.ConflictingBookings {
		ids = append(ids, b.ID)
	}

	return &ConflictInfo{
		Overlaps:              true,
		ConflictMode:          string(policy.ConflictMode),
		ConflictingBookingIDs: ids,
	}
}
