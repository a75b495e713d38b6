package schedule

import (
	"sync"
	"time"
)

// DefaultTickInterval is how often subscribers are given a fresh "now"
const DefaultTickInterval = 60 * time.Second

// Clock is the injectable time capability. Production code uses WallClock;
// tests supply a fake and advance it deterministically instead of waiting
// on wall-clock intervals.
type Clock interface {
	Now() time.Time
}

// WallClock is the production clock
type WallClock struct{}

// Now returns the current wall-clock time
func (WallClock) Now() time.Time {
	return time.Now()
}

// Ticker periodically republishes a fresh "now" to its subscribers so they
// can re-run temporal classification and replace render-ready view state.
// A stale tick is simply superseded by the next one; delivery is
// last-write-wins and ticks are never queued.
type Ticker struct {
	clock    Clock
	interval time.Duration

	mu   sync.Mutex
	subs []func(now time.Time)

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewTicker creates a ticker over the given clock. It does not start until
// Start is called.
func NewTicker(clock Clock, interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Ticker{
		clock:    clock,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Subscribe registers a callback invoked on every tick with the clock's
// current time. Callbacks run on the ticker goroutine and must not block.
func (t *Ticker) Subscribe(fn func(now time.Time)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.subs = append(t.subs, fn)
}

// Start begins ticking in a background goroutine until Stop is called.
// Subscribers receive one immediate tick on start.
func (t *Ticker) Start() {
	go func() {
		t.Tick()

		ticker := time.NewTicker(t.interval)
		defer ticker.Stop()

		for {
			select {
			case <-t.stopCh:
				return
			case <-ticker.C:
				t.Tick()
			}
		}
	}()
}

// Tick delivers the clock's current time to all subscribers synchronously.
// Exposed so tests can drive the ticker from a fake clock.
func (t *Ticker) Tick() {
	now := t.clock.Now()

	t.mu.Lock()
	subs := make([]func(time.Time), len(t.subs))
	copy(subs, t.subs)
	t.mu.Unlock()

	for _, fn := range subs {
		fn(now)
	}
}

// Stop halts the ticker. Safe to call more than once.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopCh)
	})
}
