// Package service holds the entry collections the tracker records into:
// navigation history, a most-visited ranking, favorites with staged edits,
// and the scratch lists of component types.
//
// Services are not safe for concurrent use. They are driven from the host's
// single update goroutine; only Event is guarded, so subscribers may come
// and go from elsewhere.
package service

import (
	"errors"
	"slices"

	"github.com/agentx-labs/seltrack/internal/entry"
)

// Service names, used as keys in the persisted state.
const (
	NameHistory         = "history"
	NameMostVisited     = "most_visited"
	NameFavorites       = "favorites"
	NameSceneComponents = "scene_components"
	NameComponentList   = "component_list"
)

var (
	// ErrNoBaseline is returned when staged favorites are discarded before
	// any baseline was stored.
	ErrNoBaseline = errors.New("no favorites baseline stored")

	// ErrManualRemoval is the panic value of removals from a list that is
	// only ever rebuilt wholesale.
	ErrManualRemoval = errors.New("entries cannot be removed from this list manually")
)

// Service is the contract every entry collection implements.
type Service interface {
	Name() string
	// Entries is a read-only view in display order.
	Entries() []*entry.Entry
	// OnUpdated fires after every structural change.
	OnUpdated() *Event
	// CurrentSelectionIndex is the navigation cursor in display order, -1
	// when unset.
	CurrentSelectionIndex() int
	SetCurrentSelectionIndex(i int)
	ResetCurrentSelection()
	// SizeLimit is the capacity; 0 means unbounded.
	SizeLimit() int
	Record(e *entry.Entry)
	Remove(e *entry.Entry)
	RemoveAll()
	RemoveFunc(pred func(*entry.Entry) bool)
}

// Persistent is implemented by services whose contents survive restarts.
type Persistent interface {
	Service
	// Stored returns the contents to persist, in internal order.
	Stored() []*entry.Entry
	// Restore replaces the contents with previously stored ones.
	Restore(entries []*entry.Entry)
}

// base carries the notification and cursor bookkeeping shared by the
// services that have no navigation semantics.
type base struct {
	updated Event
	cursor  int
}

func (b *base) OnUpdated() *Event              { return &b.updated }
func (b *base) CurrentSelectionIndex() int     { return b.cursor }
func (b *base) SetCurrentSelectionIndex(i int) { b.cursor = i }
func (b *base) ResetCurrentSelection()         { b.cursor = -1 }

func indexOf(list []*entry.Entry, e *entry.Entry) int {
	return slices.IndexFunc(list, func(x *entry.Entry) bool {
		return x.Equal(e)
	})
}

func reversed(list []*entry.Entry) []*entry.Entry {
	out := slices.Clone(list)
	slices.Reverse(out)
	return out
}

func equalTo(e *entry.Entry) func(*entry.Entry) bool {
	return func(x *entry.Entry) bool { return x.Equal(e) }
}

func nonNil(list []*entry.Entry) []*entry.Entry {
	return slices.DeleteFunc(slices.Clone(list), func(e *entry.Entry) bool {
		return e == nil
	})
}
