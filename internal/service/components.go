package service

import (
	"slices"

	"github.com/agentx-labs/seltrack/internal/entry"
)

// SceneComponents lists one entry per component type seen in the opened
// containers. It only grows through Record; observers are notified by
// Refresh once a batch is recorded.
type SceneComponents struct {
	base
	entries []*entry.Entry
}

// NewSceneComponents returns an empty list.
func NewSceneComponents() *SceneComponents {
	return &SceneComponents{base: base{cursor: -1}}
}

func (s *SceneComponents) Name() string   { return NameSceneComponents }
func (s *SceneComponents) SizeLimit() int { return 0 }

// Entries returns the list in recording order.
func (s *SceneComponents) Entries() []*entry.Entry {
	return slices.Clone(s.entries)
}

// Record appends e unless an equal entry is listed. It does not notify.
func (s *SceneComponents) Record(e *entry.Entry) {
	if e == nil || indexOf(s.entries, e) >= 0 {
		return
	}
	s.entries = append(s.entries, e)
}

// Refresh notifies observers.
func (s *SceneComponents) Refresh() {
	s.updated.Fire()
}

// Remove does nothing: component types are not removed individually.
func (s *SceneComponents) Remove(*entry.Entry) {}

// RemoveFunc does nothing, like Remove.
func (s *SceneComponents) RemoveFunc(func(*entry.Entry) bool) {}

// RemoveAll clears the list.
func (s *SceneComponents) RemoveAll() {
	s.entries = nil
	s.updated.Fire()
}

// Stored returns the list in recording order.
func (s *SceneComponents) Stored() []*entry.Entry {
	return slices.Clone(s.entries)
}

// Restore replaces the list, dropping duplicates.
func (s *SceneComponents) Restore(entries []*entry.Entry) {
	s.entries = nil
	for _, e := range entries {
		s.Record(e)
	}
	s.updated.Fire()
}

// ComponentList holds the components of the current selection. It is
// rebuilt wholesale on every selection; removing single entries is a
// programming error.
type ComponentList struct {
	base
	entries []*entry.Entry
}

// NewComponentList returns an empty list.
func NewComponentList() *ComponentList {
	return &ComponentList{base: base{cursor: -1}}
}

func (c *ComponentList) Name() string   { return NameComponentList }
func (c *ComponentList) SizeLimit() int { return 0 }

// Entries returns the list in recording order.
func (c *ComponentList) Entries() []*entry.Entry {
	return slices.Clone(c.entries)
}

// Record appends e.
func (c *ComponentList) Record(e *entry.Entry) {
	if e == nil {
		return
	}
	c.entries = append(c.entries, e)
}

// Reset empties the list ahead of the next selection without notifying.
func (c *ComponentList) Reset() {
	c.entries = nil
}

// Refresh notifies observers.
func (c *ComponentList) Refresh() {
	c.updated.Fire()
}

// Remove panics with ErrManualRemoval.
func (c *ComponentList) Remove(*entry.Entry) {
	panic(ErrManualRemoval)
}

// RemoveFunc panics with ErrManualRemoval.
func (c *ComponentList) RemoveFunc(func(*entry.Entry) bool) {
	panic(ErrManualRemoval)
}

// RemoveAll clears the list.
func (c *ComponentList) RemoveAll() {
	c.entries = nil
	c.updated.Fire()
}

var (
	_ Persistent = (*SceneComponents)(nil)
	_ Service    = (*ComponentList)(nil)
)
