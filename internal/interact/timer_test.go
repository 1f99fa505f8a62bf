package interact_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentx-labs/seltrack/internal/interact"
)

// queue collects dispatched callbacks so tests run them on their own
// goroutine, the way a UI loop would.
type queue chan func()

func (q queue) dispatch(fn func()) { q <- fn }

func (q queue) next(t *testing.T) func() {
	t.Helper()
	select {
	case fn := <-q:
		return fn
	case <-time.After(2 * time.Second):
		require.FailNow(t, "no callback dispatched")
		return nil
	}
}

func (q queue) none(t *testing.T, wait time.Duration) {
	t.Helper()
	select {
	case <-q:
		assert.Fail(t, "unexpected callback dispatched")
	case <-time.After(wait):
	}
}

func newQueue() queue { return make(queue, 8) }

func TestTimer_Fires(t *testing.T) {
	q := newQueue()
	tm := interact.NewTimer(interact.WithDispatcher(q.dispatch))

	ran := 0
	tm.Schedule(time.Millisecond, func() { ran++ })
	q.next(t)()

	assert.Equal(t, 1, ran)
	assert.False(t, tm.Pending())
}

func TestTimer_Cancel(t *testing.T) {
	q := newQueue()
	tm := interact.NewTimer(interact.WithDispatcher(q.dispatch))

	tm.Schedule(20*time.Millisecond, func() { t.Error("cancelled task ran") })
	require.True(t, tm.Pending())
	tm.Cancel()

	assert.False(t, tm.Pending())
	q.none(t, 100*time.Millisecond)
}

func TestTimer_ScheduleReplacesPending(t *testing.T) {
	q := newQueue()
	tm := interact.NewTimer(interact.WithDispatcher(q.dispatch))

	var got []string
	tm.Schedule(time.Hour, func() { got = append(got, "first") })
	tm.Schedule(time.Millisecond, func() { got = append(got, "second") })
	q.next(t)()

	assert.Equal(t, []string{"second"}, got)
	q.none(t, 50*time.Millisecond)
}

func TestTimer_CancelAfterDispatch(t *testing.T) {
	q := newQueue()
	tm := interact.NewTimer(interact.WithDispatcher(q.dispatch))

	tm.Schedule(time.Millisecond, func() { t.Error("task ran after cancel") })
	fn := q.next(t)
	tm.Cancel()
	fn()
}

func TestTimer_DefaultRunsOnTimerGoroutine(t *testing.T) {
	tm := interact.NewTimer()
	done := make(chan struct{})
	tm.Schedule(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run")
	}
}
