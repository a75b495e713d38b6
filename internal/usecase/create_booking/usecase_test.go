package create_booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/integrations/garageservice"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

// Фиксированное "сейчас" для детерминированных тестов
var testNow = time.Date(2024, 2, 15, 8, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	createdID int64
	createErr error
}

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.createdID++
	created := *booking
	created.ID = r.createdID
	created.CreatedAt = testNow
	created.UpdatedAt = testNow
	r.bookings = append(r.bookings, &created)
	return &created, nil
}

func (r *fakeBookingRepo) GetByRange(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return r.bookings, nil
}

type fakePolicies struct {
	policy *domain.SchedulingPolicy
}

func (p *fakePolicies) GetDomain(_ context.Context, _ int64) (*domain.SchedulingPolicy, error) {
	return p.policy, nil
}

type fakeGarageClient struct {
	card *garageservice.CustomerCard
	err  error
}

func (c *fakeGarageClient) GetCustomerCardWithGracefulDegradation(_ context.Context, _ int64) (*garageservice.CustomerCard, error) {
	return c.card, c.err
}

type fakeTxManager struct{}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (t *fixedTime) Now() time.Time { return t.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testPolicy(mode domain.ConflictMode) *domain.SchedulingPolicy {
	return &domain.SchedulingPolicy{
		WorkingHoursStart:       8,
		WorkingHoursEnd:         18,
		TimeIncrementMinutes:    30,
		BufferBeforeMinutes:     15,
		BufferAfterMinutes:      15,
		MaxAppointmentsPerSlot:  1,
		ConflictMode:            mode,
		ShowOverlappingBookings: true,
	}
}

func newTestUseCase(repo *fakeBookingRepo, policy *domain.SchedulingPolicy, garage *fakeGarageClient) *UseCase {
	uc := NewUseCase(repo, &fakePolicies{policy: policy}, garage, &fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

func testCard() *garageservice.CustomerCard {
	return &garageservice.CustomerCard{
		ID:           42,
		Name:         "Иван Петров",
		VehicleBrand: ptr.Ptr("Toyota"),
		VehicleModel: ptr.Ptr("Corolla"),
		LicensePlate: ptr.Ptr("А123БВ77"),
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2024, 2, 15, hour, minute, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		UserID:     1,
		CustomerID: 42,
		StartTime:  at(10, 0),
		EndTime:    at(11, 0),
	}
}

func TestExecute_CreatesBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, testPolicy(domain.ConflictModeBlock), &fakeGarageClient{card: testCard()})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, "Иван Петров", resp.CustomerName)
	require.NotNil(t, resp.VehicleBrand)
	assert.Equal(t, "Toyota", *resp.VehicleBrand)
	assert.Nil(t, resp.Conflict)
	assert.Len(t, repo.bookings, 1)
}

func TestExecute_BlockModeRejectsOverlap(t *testing.T) {
	// Запись A 09:00-10:00 с буфером 15 минут после: предложение на 10:05
	// попадает в расширенный интервал и блокируется
	repo := &fakeBookingRepo{}
	repo.bookings = append(repo.bookings, &domain.Booking{
		ID:        100,
		StartTime: at(9, 0),
		EndTime:   at(10, 0),
		Status:    domain.StatusScheduled,
	})

	uc := newTestUseCase(repo, testPolicy(domain.ConflictModeBlock), &fakeGarageClient{card: testCard()})

	req := validRequest()
	req.StartTime = at(10, 5)
	req.EndTime = at(10, 30)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotBlocked)

	// Новая запись не создана
	assert.Len(t, repo.bookings, 1)
}

func TestExecute_WarnModeCreatesWithConflictInfo(t *testing.T) {
	repo := &fakeBookingRepo{}
	repo.bookings = append(repo.bookings, &domain.Booking{
		ID:        100,
		StartTime: at(9, 0),
		EndTime:   at(10, 0),
		Status:    domain.StatusScheduled,
	})
	repo.createdID = 100

	uc := newTestUseCase(repo, testPolicy(domain.ConflictModeWarn), &fakeGarageClient{card: testCard()})

	req := validRequest()
	req.StartTime = at(9, 30)
	req.EndTime = at(10, 30)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, resp.Conflict)
	assert.True(t, resp.Conflict.Overlaps)
	assert.Equal(t, "warn", resp.Conflict.ConflictMode)
	assert.Equal(t, []int64{100}, resp.Conflict.ConflictingBookingIDs)
	assert.Len(t, repo.bookings, 2)
}

func TestExecute_GracefulDegradation(t *testing.T) {
	// GarageService недоступен: бронирование создаётся без данных клиента
	repo := &fakeBookingRepo{}
	garage := &fakeGarageClient{
		err: fmt.Errorf("%w: customer_id=42", garageservice.ErrServiceDegraded),
	}

	uc := newTestUseCase(repo, testPolicy(domain.ConflictModeBlock), garage)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Empty(t, resp.CustomerName)
	assert.Nil(t, resp.VehicleBrand)
	assert.Len(t, repo.bookings, 1)
}

func TestExecute_CustomerNotFound(t *testing.T) {
	repo := &fakeBookingRepo{}
	garage := &fakeGarageClient{err: garageservice.ErrCustomerNotFound}

	uc := newTestUseCase(repo, testPolicy(domain.ConflictModeBlock), garage)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrCustomerNotFound)
	assert.Empty(t, repo.bookings)
}

func TestExecute_RejectsPastStart(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, testPolicy(domain.ConflictModeBlock), &fakeGarageClient{card: testCard()})

	req := validRequest()
	req.StartTime = at(7, 0) // testNow = 08:00
	req.EndTime = at(7, 30)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InvalidInput(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, testPolicy(domain.ConflictModeBlock), &fakeGarageClient{card: testCard()})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero user", func(r *Request) { r.UserID = 0 }},
		{"zero customer", func(r *Request) { r.CustomerID = 0 }},
		{"end before start", func(r *Request) { r.EndTime = r.StartTime.Add(-time.Hour) }},
		{"end equals start", func(r *Request) { r.EndTime = r.StartTime }},
		{"negative technician", func(r *Request) { r.TechnicianID = ptr.Ptr(int64(-1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_AllowModeNeverBlocks(t *testing.T) {
	repo := &fakeBookingRepo{}
	repo.bookings = append(repo.bookings, &domain.Booking{
		ID:        100,
		StartTime: at(10, 0),
		EndTime:   at(11, 0),
		Status:    domain.StatusScheduled,
	})
	repo.createdID = 100

	uc := newTestUseCase(repo, testPolicy(domain.ConflictModeAllow), &fakeGarageClient{card: testCard()})

	// Точное совпадение с существующей записью
	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Len(t, repo.bookings, 2)

	// В режиме allow пересечения отображаются, если включен флаг показа
	require.NotNil(t, resp.Conflict)
	assert.True(t, resp.Conflict.Overlaps)
}
