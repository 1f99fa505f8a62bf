package service_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentx-labs/seltrack/internal/entry"
	"github.com/agentx-labs/seltrack/internal/service"
)

func TestHistory_BoundedAndDeduplicated(t *testing.T) {
	w := newWorld(150)
	h := service.NewHistory()
	rng := rand.New(rand.NewPCG(1, 2))

	for range 1000 {
		h.Record(w.entry(rng.IntN(150)))

		got := h.Entries()
		require.LessOrEqual(t, len(got), service.HistoryLimit)
		for i := range got {
			for j := i + 1; j < len(got); j++ {
				require.False(t, got[i].Equal(got[j]), "duplicate at %d and %d", i, j)
			}
		}
	}
	assert.Len(t, h.Entries(), service.HistoryLimit)
}

func TestHistory_RecordOrder(t *testing.T) {
	w := newWorld(3)
	h := service.NewHistory()
	updates := countUpdates(h)

	h.Record(nil)
	assert.Equal(t, 0, *updates)

	for _, e := range w.entries(3) {
		h.Record(e)
	}
	assert.Equal(t, []string{"Node2", "Node1", "Node0"}, names(h.Entries()))

	first := h.Entries()[2]
	h.Record(w.entry(0))
	assert.Equal(t, []string{"Node0", "Node2", "Node1"}, names(h.Entries()))
	assert.Same(t, first, h.Entries()[0], "existing entry is kept and moved")
	assert.Equal(t, 4, *updates)
}

func TestHistory_EvictsOldest(t *testing.T) {
	w := newWorld(service.HistoryLimit + 1)
	h := service.NewHistory()
	for _, e := range w.entries(service.HistoryLimit + 1) {
		h.Record(e)
	}

	got := h.Entries()
	require.Len(t, got, service.HistoryLimit)
	assert.Equal(t, "Node100", got[0].Name())
	assert.Equal(t, "Node1", got[len(got)-1].Name())
}

func TestHistory_RecordAtCursorIsNoop(t *testing.T) {
	w := newWorld(4)
	h := service.NewHistory()
	for _, e := range w.entries(4) {
		h.Record(e)
	}

	cur := h.PreviousSelection()
	require.Equal(t, "Node2", cur.Name())
	idx := h.CurrentSelectionIndex()
	before := names(h.Entries())
	updates := countUpdates(h)

	h.Record(w.entry(2))

	assert.Equal(t, before, names(h.Entries()))
	assert.Equal(t, idx, h.CurrentSelectionIndex(), "cursor is not reset")
	assert.Equal(t, 0, *updates)
}

func TestHistory_RecordResetsCursor(t *testing.T) {
	w := newWorld(3)
	h := service.NewHistory()
	h.Record(w.entry(0))
	h.Record(w.entry(1))
	h.PreviousSelection()
	require.Equal(t, 1, h.CurrentSelectionIndex())

	h.Record(w.entry(2))
	assert.Equal(t, -1, h.CurrentSelectionIndex())
}

func TestHistory_Navigation(t *testing.T) {
	w := newWorld(5)
	h := service.NewHistory()
	assert.Nil(t, h.PreviousSelection())
	assert.Nil(t, h.NextSelection())

	for _, e := range w.entries(5) {
		h.Record(e)
	}

	// With no cursor the newest entry is the implicit position.
	assert.Equal(t, "Node3", h.PreviousSelection().Name())
	assert.Equal(t, 1, h.CurrentSelectionIndex())
	assert.Equal(t, "Node2", h.PreviousSelection().Name())
	assert.Equal(t, "Node1", h.PreviousSelection().Name())
	assert.Equal(t, "Node0", h.PreviousSelection().Name())
	assert.Equal(t, "Node0", h.PreviousSelection().Name(), "clamped at the oldest")
	assert.Equal(t, 4, h.CurrentSelectionIndex())

	for range 10 {
		h.NextSelection()
	}
	assert.Equal(t, "Node4", h.NextSelection().Name(), "clamped at the newest")
	assert.Equal(t, 0, h.CurrentSelectionIndex())
}

func TestHistory_NextPreviousAreInverse(t *testing.T) {
	w := newWorld(6)
	h := service.NewHistory()
	for _, e := range w.entries(6) {
		h.Record(e)
	}

	for i := 1; i < 5; i++ {
		h.SetCurrentSelectionIndex(i)
		at := h.Entries()[i]

		h.NextSelection()
		got := h.PreviousSelection()
		assert.Same(t, at, got, "index %d", i)

		h.PreviousSelection()
		got = h.NextSelection()
		assert.Same(t, at, got, "index %d", i)
	}
}

func TestHistory_SetCurrentSelectionIndex(t *testing.T) {
	w := newWorld(3)
	h := service.NewHistory()
	for _, e := range w.entries(3) {
		h.Record(e)
	}

	h.SetCurrentSelectionIndex(0)
	assert.Equal(t, 0, h.CurrentSelectionIndex())
	assert.Equal(t, "Node1", h.PreviousSelection().Name())

	h.SetCurrentSelectionIndex(7)
	assert.Equal(t, -1, h.CurrentSelectionIndex())

	h.SetCurrentSelectionIndex(2)
	h.ResetCurrentSelection()
	assert.Equal(t, -1, h.CurrentSelectionIndex())
}

func TestHistory_RemoveKeepsCursorOnEntry(t *testing.T) {
	w := newWorld(5)
	h := service.NewHistory()
	for _, e := range w.entries(5) {
		h.Record(e)
	}
	h.SetCurrentSelectionIndex(1) // Node3
	updates := countUpdates(h)

	h.Remove(w.entry(4))
	assert.Equal(t, []string{"Node3", "Node2", "Node1", "Node0"}, names(h.Entries()))
	assert.Equal(t, 0, h.CurrentSelectionIndex())

	h.RemoveFunc(func(e *entry.Entry) bool { return e.Name() == "Node0" })
	assert.Equal(t, 0, h.CurrentSelectionIndex())

	h.Remove(w.entry(3))
	assert.Equal(t, -1, h.CurrentSelectionIndex(), "cursor entry removed")

	h.RemoveAll()
	assert.Empty(t, h.Entries())
	assert.Equal(t, 4, *updates)
}

func TestRecordTwice_HistoryDedupsMostVisitedCounts(t *testing.T) {
	w := newWorld(2)
	h := service.NewHistory()
	mv := service.NewMostVisited()

	once := service.NewHistory()
	once.Record(w.entry(0))
	once.Record(w.entry(1))

	for _, s := range []service.Service{h, mv} {
		s.Record(w.entry(0))
		s.Record(w.entry(1))
		s.Record(w.entry(1))
	}

	assert.Equal(t, names(once.Entries()), names(h.Entries()))

	ranked := mv.Ranked()
	require.Len(t, ranked, 2)
	assert.Equal(t, "Node1", ranked[0].Entry.Name())
	assert.Equal(t, 2, ranked[0].Count)
	assert.Equal(t, 3, mv.Observations())
}

func TestHistory_Restore(t *testing.T) {
	w := newWorld(service.HistoryLimit + 5)
	h := service.NewHistory()

	stored := w.entries(service.HistoryLimit + 5)
	stored[3] = nil
	h.Restore(stored)

	got := h.Stored()
	require.Len(t, got, service.HistoryLimit)
	assert.Equal(t, "Node5", got[0].Name())
	assert.Equal(t, -1, h.CurrentSelectionIndex())
}
