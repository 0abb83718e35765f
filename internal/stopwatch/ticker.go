package stopwatch

import (
	"sync"
	"time"
)

// Ticker emits a callback at a fixed period while armed.
//
// Implementations must treat Disarm as idempotent. Arming an already armed
// ticker replaces the previous arming.
type Ticker interface {
	Arm(period time.Duration, fire func())
	Disarm()
}

// IntervalTicker drives fire from a time.Ticker on its own goroutine.
type IntervalTicker struct {
	mu   sync.Mutex
	stop chan struct{}
	once *sync.Once
}

func NewIntervalTicker() *IntervalTicker {
	return &IntervalTicker{}
}

func (t *IntervalTicker) Arm(period time.Duration, fire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.disarmLocked()

	stop := make(chan struct{})
	t.stop = stop
	t.once = &sync.Once{}

	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				// A stop that races with a pending tick wins.
				select {
				case <-stop:
					return
				default:
				}
				fire()
			}
		}
	}()
}

func (t *IntervalTicker) Disarm() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.disarmLocked()
}

func (t *IntervalTicker) disarmLocked() {
	if t.stop == nil {
		return
	}
	stop := t.stop
	t.once.Do(func() { close(stop) })
	t.stop = nil
	t.once = nil
}

// Armed reports whether a goroutine is currently driving ticks.
func (t *IntervalTicker) Armed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

// ManualTicker delivers ticks only when Fire is called. The period is
// recorded but never waited on.
type ManualTicker struct {
	mu     sync.Mutex
	period time.Duration
	fire   func()
}

func NewManualTicker() *ManualTicker {
	return &ManualTicker{}
}

func (t *ManualTicker) Arm(period time.Duration, fire func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.period = period
	t.fire = fire
}

func (t *ManualTicker) Disarm() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fire = nil
}

func (t *ManualTicker) Armed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fire != nil
}

func (t *ManualTicker) Period() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.period
}

// Fire delivers n ticks and returns how many were delivered. Delivery stops
// early if a tick disarms the ticker.
func (t *ManualTicker) Fire(n int) int {
	delivered := 0
	for i := 0; i < n; i++ {
		t.mu.Lock()
		fire := t.fire
		t.mu.Unlock()
		if fire == nil {
			break
		}
		fire()
		delivered++
	}
	return delivered
}

// FireFor delivers as many ticks as fit in d at the armed period.
func (t *ManualTicker) FireFor(d time.Duration) int {
	period := t.Period()
	if period <= 0 {
		return 0
	}
	return t.Fire(int(d / period))
}
