package service

import (
	"slices"

	"github.com/agentx-labs/seltrack/internal/entry"
)

// HistoryLimit is the number of selections History keeps.
const HistoryLimit = 100

// History is the navigation log of recent selections, deduplicated by
// entry equality. It is stored oldest first and exposed newest first.
type History struct {
	entries []*entry.Entry
	// cursor indexes entries; -1 means no cursor, in which case navigation
	// starts from the newest entry.
	cursor  int
	updated Event
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{cursor: -1}
}

func (h *History) Name() string      { return NameHistory }
func (h *History) SizeLimit() int    { return HistoryLimit }
func (h *History) OnUpdated() *Event { return &h.updated }
func (h *History) Len() int          { return len(h.entries) }

// Entries returns the log newest first.
func (h *History) Entries() []*entry.Entry {
	return reversed(h.entries)
}

// Record moves e to the newest position. Recording the entry under the
// cursor does nothing, so navigating does not reset the cursor. When an
// equal entry is already logged, that entry is kept and moved.
func (h *History) Record(e *entry.Entry) {
	if e == nil {
		return
	}
	if cur := h.current(); cur != nil && cur.Equal(e) {
		return
	}

	if i := indexOf(h.entries, e); i >= 0 {
		e = h.entries[i]
		h.entries = slices.Delete(h.entries, i, i+1)
	}
	h.entries = append(h.entries, e)
	if over := len(h.entries) - HistoryLimit; over > 0 {
		h.entries = slices.Delete(h.entries, 0, over)
	}

	h.cursor = -1
	h.updated.Fire()
}

// Remove deletes every entry equal to e.
func (h *History) Remove(e *entry.Entry) {
	if e == nil {
		return
	}
	h.RemoveFunc(equalTo(e))
}

// RemoveAll clears the log.
func (h *History) RemoveAll() {
	h.entries = nil
	h.cursor = -1
	h.updated.Fire()
}

// RemoveFunc deletes the entries matching pred. The cursor keeps pointing at
// the same entry, or is reset when that entry is gone.
func (h *History) RemoveFunc(pred func(*entry.Entry) bool) {
	cur := h.current()
	h.entries = slices.DeleteFunc(h.entries, pred)
	h.cursor = -1
	if cur != nil {
		h.cursor = slices.Index(h.entries, cur)
	}
	h.updated.Fire()
}

// PreviousSelection steps the cursor one entry older and returns the entry
// there, stopping at the oldest. It returns nil when the log is empty.
func (h *History) PreviousSelection() *entry.Entry {
	if len(h.entries) == 0 {
		return nil
	}
	h.cursor = max(h.position()-1, 0)
	return h.entries[h.cursor]
}

// NextSelection steps the cursor one entry newer and returns the entry
// there, stopping at the newest. It returns nil when the log is empty.
func (h *History) NextSelection() *entry.Entry {
	if len(h.entries) == 0 {
		return nil
	}
	h.cursor = min(h.position()+1, len(h.entries)-1)
	return h.entries[h.cursor]
}

// CurrentSelectionIndex returns the cursor in display order, or -1.
func (h *History) CurrentSelectionIndex() int {
	if h.cursor < 0 {
		return -1
	}
	return len(h.entries) - 1 - h.cursor
}

// SetCurrentSelectionIndex places the cursor at display index i. Indexes
// out of range clear the cursor.
func (h *History) SetCurrentSelectionIndex(i int) {
	if i < 0 || i >= len(h.entries) {
		h.cursor = -1
		return
	}
	h.cursor = len(h.entries) - 1 - i
}

// ResetCurrentSelection clears the cursor.
func (h *History) ResetCurrentSelection() {
	h.cursor = -1
}

// Stored returns the log oldest first.
func (h *History) Stored() []*entry.Entry {
	return slices.Clone(h.entries)
}

// Restore replaces the log, keeping the newest HistoryLimit entries.
func (h *History) Restore(entries []*entry.Entry) {
	entries = nonNil(entries)
	if over := len(entries) - HistoryLimit; over > 0 {
		entries = entries[over:]
	}
	h.entries = entries
	h.cursor = -1
	h.updated.Fire()
}

func (h *History) current() *entry.Entry {
	if h.cursor < 0 || h.cursor >= len(h.entries) {
		return nil
	}
	return h.entries[h.cursor]
}

func (h *History) position() int {
	if h.cursor < 0 || h.cursor >= len(h.entries) {
		return len(h.entries) - 1
	}
	return h.cursor
}

var _ Persistent = (*History)(nil)
