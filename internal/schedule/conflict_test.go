package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

func bufferedPolicy(mode domain.ConflictMode) *domain.SchedulingPolicy {
	policy := testPolicy()
	policy.ConflictMode = mode
	policy.BufferBeforeMinutes = 15
	policy.BufferAfterMinutes = 15
	return policy
}

// Существующее бронирование A 09:00-10:00 с буферами 15 минут занимает
// [08:45, 10:15]; предложение B 10:05-10:30 попадает внутрь
func TestEvaluate_BlockMode_PaddedIntervalConflict(t *testing.T) {
	existing := []*domain.Booking{mkBooking(1, at(testDay, 9, 0), at(testDay, 10, 0))}
	proposed := Proposal{Start: at(testDay, 10, 5), End: at(testDay, 10, 30)}

	verdict, err := Evaluate(proposed, existing, bufferedPolicy(domain.ConflictModeBlock))
	require.NoError(t, err)

	assert.True(t, verdict.Blocked)
	assert.True(t, verdict.Overlaps)
	require.Len(t, verdict.ConflictingBookings, 1)
	assert.Equal(t, int64(1), verdict.ConflictingBookings[0].ID)
}

func TestEvaluate_WarnMode_OverlapsWithoutBlocking(t *testing.T) {
	existing := []*domain.Booking{mkBooking(1, at(testDay, 9, 0), at(testDay, 10, 0))}
	proposed := Proposal{Start: at(testDay, 10, 5), End: at(testDay, 10, 30)}

	verdict, err := Evaluate(proposed, existing, bufferedPolicy(domain.ConflictModeWarn))
	require.NoError(t, err)

	assert.False(t, verdict.Blocked)
	assert.True(t, verdict.Overlaps)
	assert.Len(t, verdict.ConflictingBookings, 1)
}

func TestEvaluate_AllowMode_NeverBlocks(t *testing.T) {
	existing := []*domain.Booking{
		mkBooking(1, at(testDay, 9, 0), at(testDay, 10, 0)),
		mkBooking(2, at(testDay, 9, 0), at(testDay, 10, 0)),
		mkBooking(3, at(testDay, 9, 30), at(testDay, 11, 0)),
	}
	proposed := Proposal{Start: at(testDay, 9, 0), End: at(testDay, 10, 0)}

	policy := bufferedPolicy(domain.ConflictModeAllow)
	verdict, err := Evaluate(proposed, existing, policy)
	require.NoError(t, err)

	assert.False(t, verdict.Blocked)
	// Информация о пересечениях считается, т.к. ShowOverlappingBookings = true
	assert.True(t, verdict.Overlaps)
}

func TestEvaluate_AllowMode_DisplayToggleOff(t *testing.T) {
	existing := []*domain.Booking{mkBooking(1, at(testDay, 9, 0), at(testDay, 10, 0))}
	proposed := Proposal{Start: at(testDay, 9, 0), End: at(testDay, 10, 0)}

	policy := bufferedPolicy(domain.ConflictModeAllow)
	policy.ShowOverlappingBookings = false

	verdict, err := Evaluate(proposed, existing, policy)
	require.NoError(t, err)

	assert.False(t, verdict.Blocked)
	assert.False(t, verdict.Overlaps)
	assert.Empty(t, verdict.ConflictingBookings)
}

// Полуоткрытый интервал: при нулевых буферах бронирование, заканчивающееся
// ровно в момент начала предложения, не является конфликтом
func TestEvaluate_BoundaryContactIsNotConflict(t *testing.T) {
	existing := []*domain.Booking{
		mkBooking(1, at(testDay, 9, 0), at(testDay, 10, 0)),
		mkBooking(2, at(testDay, 10, 30), at(testDay, 11, 0)),
	}
	proposed := Proposal{Start: at(testDay, 10, 0), End: at(testDay, 10, 30)}

	verdict, err := Evaluate(proposed, existing, testPolicy())
	require.NoError(t, err)

	assert.False(t, verdict.Blocked)
	assert.False(t, verdict.Overlaps)
	assert.Empty(t, verdict.ConflictingBookings)
}

func TestEvaluate_CancelledBookingsIgnored(t *testing.T) {
	cancelled := mkBooking(1, at(testDay, 9, 0), at(testDay, 10, 0))
	cancelled.Status = domain.StatusCancelled

	proposed := Proposal{Start: at(testDay, 9, 0), End: at(testDay, 10, 0)}

	verdict, err := Evaluate(proposed, []*domain.Booking{cancelled}, testPolicy())
	require.NoError(t, err)

	assert.False(t, verdict.Blocked)
	assert.False(t, verdict.Overlaps)
}

// Кросс-техниковые пересечения не являются конфликтами
func TestEvaluate_TechnicianScoping(t *testing.T) {
	otherTech := mkBooking(1, at(testDay, 9, 0), at(testDay, 10, 0))
	otherTech.TechnicianID = ptr.Ptr(int64(2))

	sameTech := mkBooking(2, at(testDay, 9, 0), at(testDay, 10, 0))
	sameTech.TechnicianID = ptr.Ptr(int64(1))

	unassigned := mkBooking(3, at(testDay, 9, 0), at(testDay, 10, 0))

	proposed := Proposal{
		Start:        at(testDay, 9, 0),
		End:          at(testDay, 10, 0),
		TechnicianID: ptr.Ptr(int64(1)),
	}

	policy := testPolicy()
	policy.ConflictMode = domain.ConflictModeWarn

	verdict, err := Evaluate(proposed, []*domain.Booking{otherTech, sameTech, unassigned}, policy)
	require.NoError(t, err)

	assert.True(t, verdict.Overlaps)
	require.Len(t, verdict.ConflictingBookings, 2)
	assert.Equal(t, int64(2), verdict.ConflictingBookings[0].ID)
	assert.Equal(t, int64(3), verdict.ConflictingBookings[1].ID)
}

// Вместимость слота считается по всей мастерской, даже когда конфликты
// ограничены техником
func TestEvaluate_BlockMode_ShopWideCapacity(t *testing.T) {
	otherTech := mkBooking(1, at(testDay, 9, 0), at(testDay, 10, 0))
	otherTech.TechnicianID = ptr.Ptr(int64(2))

	proposed := Proposal{
		Start:        at(testDay, 9, 0),
		End:          at(testDay, 10, 0),
		TechnicianID: ptr.Ptr(int64(1)),
	}

	policy := testPolicy() // MaxAppointmentsPerSlot = 1, block mode

	verdict, err := Evaluate(proposed, []*domain.Booking{otherTech}, policy)
	require.NoError(t, err)

	// Конфликтов по технику нет, но единственное место уже занято
	assert.False(t, verdict.Overlaps)
	assert.True(t, verdict.Blocked)

	policy.MaxAppointmentsPerSlot = 2
	verdict, err = Evaluate(proposed, []*domain.Booking{otherTech}, policy)
	require.NoError(t, err)
	assert.False(t, verdict.Blocked)
}

func TestEvaluate_InvalidProposal(t *testing.T) {
	_, err := Evaluate(Proposal{Start: at(testDay, 10, 0), End: at(testDay, 10, 0)}, nil, testPolicy())

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "end_time", vErr.Field)
}

// Evaluate - сугубо консультативная проверка над снапшотом: два клиента,
// проверившие один и тот же слот по одному снапшоту, оба получают
// не-блокирующий вердикт. Авторитетная сериализация конкурентных записей
// принадлежит слою хранения, а не этому ядру.
func TestEvaluate_AdvisoryOnly(t *testing.T) {
	snapshot := []*domain.Booking{}
	slot := Proposal{Start: at(testDay, 9, 0), End: at(testDay, 9, 30)}

	first, err := Evaluate(slot, snapshot, testPolicy())
	require.NoError(t, err)
	second, err := Evaluate(slot, snapshot, testPolicy())
	require.NoError(t, err)

	assert.False(t, first.Blocked)
	assert.False(t, second.Blocked, "the core cannot detect a concurrent proposal against a stale snapshot")

	// После обновления снапшота вторая проверка уже блокируется
	refreshed := []*domain.Booking{mkBooking(1, slot.Start, slot.End)}
	third, err := Evaluate(slot, refreshed, testPolicy())
	require.NoError(t, err)
	assert.True(t, third.Blocked)
}

func TestEvaluate_AsymmetricBuffers(t *testing.T) {
	policy := testPolicy()
	policy.ConflictMode = domain.ConflictModeBlock
	policy.BufferBeforeMinutes = 0
	policy.BufferAfterMinutes = 30

	existing := []*domain.Booking{mkBooking(1, at(testDay, 9, 0), at(testDay, 10, 0))}

	// Занятый интервал [09:00, 10:30]: предложение на 10:15 конфликтует
	verdict, err := Evaluate(Proposal{Start: at(testDay, 10, 15), End: at(testDay, 10, 45)}, existing, policy)
	require.NoError(t, err)
	assert.True(t, verdict.Blocked)

	// Предложение, заканчивающееся ровно в 09:00, не конфликтует (буфер "до" нулевой)
	verdict, err = Evaluate(Proposal{Start: at(testDay, 8, 30), End: at(testDay, 9, 0)}, existing, policy)
	require.NoError(t, err)
	assert.False(t, verdict.Blocked)
}

func TestEvaluate_ZeroDurationNotAllowed(t *testing.T) {
	_, err := Evaluate(Proposal{}, nil, testPolicy())
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "start_time", vErr.Field)
}
