package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock детерминированный clock для тестов: время двигается только
// явным Advance, без ожидания wall-clock интервалов
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.current
}

func (c *fakeClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

func TestTicker_DeliversFreshNowToSubscribers(t *testing.T) {
	clock := &fakeClock{current: at(testDay, 14, 0)}
	ticker := NewTicker(clock, DefaultTickInterval)

	var got []time.Time
	ticker.Subscribe(func(now time.Time) {
		got = append(got, now)
	})

	ticker.Tick()
	clock.Advance(time.Minute)
	ticker.Tick()

	require.Len(t, got, 2)
	assert.Equal(t, at(testDay, 14, 0), got[0])
	assert.Equal(t, at(testDay, 14, 1), got[1])
}

func TestTicker_MultipleSubscribers(t *testing.T) {
	clock := &fakeClock{current: at(testDay, 14, 0)}
	ticker := NewTicker(clock, DefaultTickInterval)

	first, second := 0, 0
	ticker.Subscribe(func(time.Time) { first++ })
	ticker.Subscribe(func(time.Time) { second++ })

	ticker.Tick()
	ticker.Tick()

	assert.Equal(t, 2, first)
	assert.Equal(t, 2, second)
}

// Каждый тик пересматривает темпоральную классификацию: слот, бывший
// текущим, становится прошедшим после сдвига часов
func TestTicker_ReclassificationAcrossTicks(t *testing.T) {
	clock := &fakeClock{current: at(testDay, 14, 5)}
	ticker := NewTicker(clock, DefaultTickInterval)

	slotStart := at(testDay, 14, 0)
	slotEnd := at(testDay, 14, 30)

	var last TemporalClass
	ticker.Subscribe(func(now time.Time) {
		last = Classify(slotStart, slotEnd, now)
	})

	ticker.Tick()
	assert.Equal(t, ClassCurrent, last)

	clock.Advance(30 * time.Minute)
	ticker.Tick()
	assert.Equal(t, ClassPast, last)
}

func TestTicker_StopIsIdempotent(t *testing.T) {
	ticker := NewTicker(&fakeClock{current: at(testDay, 14, 0)}, time.Millisecond)
	ticker.Start()
	ticker.Stop()
	ticker.Stop()
}

func TestNewTicker_DefaultsInterval(t *testing.T) {
	ticker := NewTicker(WallClock{}, 0)
	assert.Equal(t, DefaultTickInterval, ticker.interval)
}
