package entry

import "github.com/agentx-labs/seltrack/internal/host"

// Resolution is the outcome of resolving an entry against the host: the live
// handle, if any, and the lifecycle state.
type Resolution struct {
	Handle host.Object
	State  RefState
}

// Resolve computes the entry's current handle and state without modifying
// the entry. All host knowledge comes from env, so the result is
// deterministic for a given host state.
func Resolve(e *Entry, env host.Queries) Resolution {
	return e.variant().resolve(e, env)
}

// Refresh resolves the entry and, when a handle was recovered from the
// StableID, adopts it and re-captures its display information.
func (e *Entry) Refresh(env host.Queries) RefState {
	res := Resolve(e, env)
	if res.Handle != nil && res.Handle != e.ref {
		e.capture(env, res.Handle)
		if n, ok := res.Handle.(host.Node); ok && e.Kind != KindIsolatedNode {
			e.container = n.Container()
			e.transient = env.InTransientSession()
		}
	}
	return res.State
}

// State is the entry's lifecycle state, re-resolving lazily.
func (e *Entry) State(env host.Queries) RefState {
	return e.Refresh(env)
}

// recoverHandle looks the StableID up again. Container-scoped identifiers are
// not stable across transient session boundaries, so recovery is skipped
// inside one: a hit could bind the entry to an unrelated object.
func recoverHandle(e *Entry, env host.Queries, containerScoped bool) host.Object {
	if containerScoped && env.InTransientSession() {
		return nil
	}
	if e.StableID.IsZero() {
		return nil
	}
	o := env.ResolveHandle(e.StableID)
	if !host.Live(o) {
		return nil
	}
	return o
}

func liveOrRecovered(e *Entry, env host.Queries, containerScoped bool) host.Object {
	if h := e.Ref(); h != nil {
		return h
	}
	return recoverHandle(e, env, containerScoped)
}

func resolveNode(e *Entry, env host.Queries) Resolution {
	var h host.Object
	container := e.container
	if o, ok := liveOrRecovered(e, env, true).(host.Node); ok {
		h = o
		container = o.Container()
	}

	switch {
	case !env.ContainerLoaded(container):
		return Resolution{Handle: h, State: Unloaded}
	case h != nil:
		return Resolution{Handle: h, State: Loaded}
	case e.transient:
		return Resolution{State: Destroyed}
	default:
		return Resolution{State: Deleted}
	}
}

func resolveIsolated(e *Entry, env host.Queries) Resolution {
	var h host.Object
	if o, ok := liveOrRecovered(e, env, true).(host.Node); ok {
		h = o
	}

	switch {
	case !env.AssetExists(e.assetPath):
		return Resolution{Handle: h, State: Deleted}
	case !env.ContainerLoaded(e.container):
		return Resolution{Handle: h, State: Unstaged}
	case h != nil:
		return Resolution{Handle: h, State: Staged}
	default:
		return Resolution{State: Deleted}
	}
}

// resolveAsset never skips recovery: asset identifiers are not scoped to a
// container. Presence follows the backing file, with or without a handle.
func resolveAsset(e *Entry, env host.Queries) Resolution {
	h := liveOrRecovered(e, env, false)

	if e.assetPath == "" || !env.AssetExists(e.assetPath) {
		return Resolution{Handle: h, State: Deleted}
	}
	return Resolution{Handle: h, State: AssetPresent}
}

func resolveSubObject(e *Entry, env host.Queries) Resolution {
	c, ok := liveOrRecovered(e, env, true).(host.Component)
	if !ok {
		return Resolution{State: Unknown}
	}
	if owner := c.Owner(); host.Live(owner) && env.ContainerLoaded(owner.Container()) {
		return Resolution{Handle: c, State: Loaded}
	}
	return Resolution{Handle: c, State: Unknown}
}
