package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

func TestBookingIndex_ForDaySortedByStartTime(t *testing.T) {
	bookings := []*domain.Booking{
		mkBooking(1, at(testDay, 15, 0), at(testDay, 16, 0)),
		mkBooking(2, at(testDay, 9, 0), at(testDay, 10, 0)),
		mkBooking(3, at(testDay, 12, 0), at(testDay, 12, 30)),
	}

	ix := NewBookingIndex(bookings)
	day := ix.ForDay(testDay)

	require.Len(t, day, 3)
	assert.Equal(t, int64(2), day[0].ID)
	assert.Equal(t, int64(3), day[1].ID)
	assert.Equal(t, int64(1), day[2].ID)
}

func TestBookingIndex_BookingBelongsToStartDay(t *testing.T) {
	// Бронирование относится ровно к одному дню - дню своего start_time
	overnight := mkBooking(1, at(testDay, 23, 0), at(testDay.AddDate(0, 0, 1), 1, 0))
	ix := NewBookingIndex([]*domain.Booking{overnight})

	assert.Len(t, ix.ForDay(testDay), 1)
	assert.Empty(t, ix.ForDay(testDay.AddDate(0, 0, 1)))
}

func TestBookingIndex_ForRange(t *testing.T) {
	dayBefore := testDay.AddDate(0, 0, -1)
	dayAfter := testDay.AddDate(0, 0, 1)

	bookings := []*domain.Booking{
		mkBooking(1, at(dayBefore, 10, 0), at(dayBefore, 11, 0)),
		mkBooking(2, at(testDay, 10, 0), at(testDay, 11, 0)),
		mkBooking(3, at(dayAfter, 10, 0), at(dayAfter, 11, 0)),
		mkBooking(4, at(dayAfter.AddDate(0, 0, 5), 10, 0), at(dayAfter.AddDate(0, 0, 5), 11, 0)),
	}

	ix := NewBookingIndex(bookings)

	got := ix.ForRange(dayBefore, dayAfter)
	require.Len(t, got, 3)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, int64(3), got[2].ID)

	assert.Empty(t, ix.ForRange(testDay.AddDate(0, 0, 10), testDay.AddDate(0, 0, 12)))
	assert.Equal(t, 4, ix.Size())
}

func TestBookingIndex_EmptySnapshot(t *testing.T) {
	ix := NewBookingIndex(nil)
	assert.Empty(t, ix.ForDay(testDay))
	assert.Empty(t, ix.ForRange(testDay, testDay.AddDate(0, 0, 7)))
	assert.Zero(t, ix.Size())
}
