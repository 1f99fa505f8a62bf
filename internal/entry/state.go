package entry

import (
	"fmt"
	"strings"
)

// Category is the object axis of a RefState.
type Category uint8

const (
	CategoryNone Category = iota
	CategoryNode
	CategoryIsolated
	CategoryAsset
)

// Phase is the lifecycle axis of a RefState.
type Phase uint8

const (
	PhaseUnknown Phase = iota
	// PhasePresent is used by assets, whose presence is binary.
	PhasePresent
	PhaseLoaded
	PhaseUnloaded
	// PhaseDestroyed marks objects created during a transient session that
	// vanished when it ended.
	PhaseDestroyed
	// PhasePlaying tags objects created inside a transient session. No
	// resolver returns it.
	PhasePlaying
	PhaseDeleted
)

// RefState is the resolved lifecycle of an entry: what kind of object it is
// and where that object is in its lifecycle.
type RefState struct {
	Category Category
	Phase    Phase
}

// Named states. Deleted and Unknown carry no category.
var (
	Unknown      = RefState{}
	Loaded       = RefState{CategoryNode, PhaseLoaded}
	Unloaded     = RefState{CategoryNode, PhaseUnloaded}
	Destroyed    = RefState{CategoryNode, PhaseDestroyed}
	Playing      = RefState{CategoryNode, PhasePlaying}
	Staged       = RefState{CategoryIsolated, PhaseLoaded}
	Unstaged     = RefState{CategoryIsolated, PhaseUnloaded}
	AssetPresent = RefState{CategoryAsset, PhasePresent}
	Deleted      = RefState{CategoryNone, PhaseDeleted}
)

// stateNames names every state. Playing is never produced by resolution, so
// it is printable but not parseable.
var stateNames = []struct {
	name     string
	state    RefState
	internal bool
}{
	{"loaded", Loaded, false},
	{"unloaded", Unloaded, false},
	{"destroyed", Destroyed, false},
	{"playing", Playing, true},
	{"staged", Staged, false},
	{"unstaged", Unstaged, false},
	{"asset", AssetPresent, false},
	{"deleted", Deleted, false},
	{"unknown", Unknown, false},
}

// IsLoaded reports a live object in a loaded container, staged content
// included.
func (s RefState) IsLoaded() bool { return s.Phase == PhaseLoaded }

// IsUnloaded reports an object whose container is not loaded, unstaged
// content included.
func (s RefState) IsUnloaded() bool { return s.Phase == PhaseUnloaded }

func (s RefState) IsDestroyed() bool { return s.Phase == PhaseDestroyed }
func (s RefState) IsDeleted() bool   { return s.Phase == PhaseDeleted }
func (s RefState) IsUnknown() bool   { return s == Unknown }
func (s RefState) IsStaged() bool    { return s == Staged }
func (s RefState) IsUnstaged() bool  { return s == Unstaged }

// Selectable reports whether the host can be asked to select the object.
func (s RefState) Selectable() bool {
	return !s.IsDeleted() && !s.IsDestroyed() && !s.IsUnloaded()
}

// Gone reports a state whose display name is shown struck through.
func (s RefState) Gone() bool {
	return s.IsDeleted() || s.IsDestroyed()
}

func (s RefState) String() string {
	for _, n := range stateNames {
		if n.state == s {
			return n.name
		}
	}
	return fmt.Sprintf("state(%d/%d)", s.Category, s.Phase)
}

// ParseRefState returns the named state, case-insensitively.
func ParseRefState(name string) (RefState, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, n := range stateNames {
		if n.name == name && !n.internal {
			return n.state, nil
		}
	}
	return Unknown, fmt.Errorf("unknown state %q", name)
}

// StateNames lists the names accepted by ParseRefState.
func StateNames() []string {
	out := make([]string, 0, len(stateNames))
	for _, n := range stateNames {
		if !n.internal {
			out = append(out, n.name)
		}
	}
	return out
}
