// Package interact implements pointer handling for tracker list elements:
// delayed single-click selection, double-click open and hover details.
package interact

import (
	"sync"
	"time"
)

// Dispatcher runs fn on the caller's event loop. Hosts with a UI thread
// supply one that posts fn there.
type Dispatcher func(fn func())

func runNow(fn func()) { fn() }

// Timer holds at most one pending task. Scheduling a new task cancels the
// previous one, and a cancelled task never runs, even if its delay already
// elapsed and it is waiting in the dispatcher.
type Timer struct {
	mu       sync.Mutex
	dispatch Dispatcher
	gen      uint64
	pending  *time.Timer
}

// TimerOption configures a Timer.
type TimerOption func(*Timer)

// WithDispatcher routes callbacks through d instead of running them on the
// timer goroutine.
func WithDispatcher(d Dispatcher) TimerOption {
	return func(t *Timer) {
		if d != nil {
			t.dispatch = d
		}
	}
}

// NewTimer returns an idle timer.
func NewTimer(opts ...TimerOption) *Timer {
	t := &Timer{dispatch: runNow}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Schedule runs fn after d, replacing any pending task.
func (t *Timer) Schedule(d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()
	gen := t.gen
	t.pending = time.AfterFunc(d, func() {
		t.mu.Lock()
		if t.gen != gen {
			t.mu.Unlock()
			return
		}
		t.pending = nil
		t.mu.Unlock()

		t.dispatch(func() {
			if t.current(gen) {
				fn()
			}
		})
	})
}

// Cancel drops the pending task, if any.
func (t *Timer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

// Pending reports whether a task is waiting for its delay to elapse.
func (t *Timer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending != nil
}

func (t *Timer) current(gen uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.gen == gen
}

func (t *Timer) stopLocked() {
	t.gen++
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}
