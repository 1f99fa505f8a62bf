package service

import (
	"cmp"
	"slices"

	"github.com/agentx-labs/seltrack/internal/entry"
)

// MostVisitedWindow is the number of raw observations MostVisited ranks.
const MostVisitedWindow = 200

// Ranked is one entry of the most-visited ranking.
type Ranked struct {
	Entry *entry.Entry
	Count int
}

// MostVisited ranks entries by how often they were recorded within a
// sliding window of observations. Observations are not deduplicated.
type MostVisited struct {
	base
	window []*entry.Entry
}

// NewMostVisited returns an empty ranking.
func NewMostVisited() *MostVisited {
	return &MostVisited{base: base{cursor: -1}}
}

func (m *MostVisited) Name() string   { return NameMostVisited }
func (m *MostVisited) SizeLimit() int { return MostVisitedWindow }

// Ranked groups the window by entry equality, most frequent first. Ties
// keep the order of first appearance. Each group is represented by its
// first observation.
func (m *MostVisited) Ranked() []Ranked {
	var groups []Ranked
	for _, e := range m.window {
		i := slices.IndexFunc(groups, func(r Ranked) bool { return r.Entry.Equal(e) })
		if i < 0 {
			groups = append(groups, Ranked{Entry: e, Count: 1})
			continue
		}
		groups[i].Count++
	}
	slices.SortStableFunc(groups, func(a, b Ranked) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return groups
}

// Entries returns the ranking without counts.
func (m *MostVisited) Entries() []*entry.Entry {
	ranked := m.Ranked()
	out := make([]*entry.Entry, len(ranked))
	for i, r := range ranked {
		out[i] = r.Entry
	}
	return out
}

// Record adds one observation, evicting the oldest beyond the window.
func (m *MostVisited) Record(e *entry.Entry) {
	if e == nil {
		return
	}
	m.window = append(m.window, e)
	if over := len(m.window) - MostVisitedWindow; over > 0 {
		m.window = slices.Delete(m.window, 0, over)
	}
	m.updated.Fire()
}

// Remove deletes every observation equal to e, dropping it from the
// ranking.
func (m *MostVisited) Remove(e *entry.Entry) {
	if e == nil {
		return
	}
	m.RemoveFunc(equalTo(e))
}

// RemoveAll clears the window.
func (m *MostVisited) RemoveAll() {
	m.window = nil
	m.updated.Fire()
}

// RemoveFunc deletes the observations matching pred.
func (m *MostVisited) RemoveFunc(pred func(*entry.Entry) bool) {
	m.window = slices.DeleteFunc(m.window, pred)
	m.updated.Fire()
}

// Observations is the number of observations in the window.
func (m *MostVisited) Observations() int {
	return len(m.window)
}

// Stored returns the raw window, oldest first.
func (m *MostVisited) Stored() []*entry.Entry {
	return slices.Clone(m.window)
}

// Restore replaces the window, keeping the newest observations.
func (m *MostVisited) Restore(entries []*entry.Entry) {
	entries = nonNil(entries)
	if over := len(entries) - MostVisitedWindow; over > 0 {
		entries = entries[over:]
	}
	m.window = entries
	m.updated.Fire()
}

var _ Persistent = (*MostVisited)(nil)
