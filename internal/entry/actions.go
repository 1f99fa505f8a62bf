package entry

import (
	"context"

	slogcontext "github.com/veqryn/slog-context"

	"github.com/agentx-labs/seltrack/internal/host"
)

// Ping asks the host to highlight the entry's object. Unresolvable targets
// are logged and ignored.
func (e *Entry) Ping(ctx context.Context, h host.Host) {
	e.variant().ping(ctx, e, h)
}

// Open asks the host to switch to the entry's editing context and select
// it. Unresolvable targets are logged and ignored.
func (e *Entry) Open(ctx context.Context, h host.Host) {
	e.variant().open(ctx, e, h)
}

func pingRef(ctx context.Context, e *Entry, h host.Host) {
	ref := e.Ref()
	if ref == nil {
		slogcontext.FromCtx(ctx).Warn("cannot ping: object is gone", "entry", e.DisplayName())
		return
	}
	h.Ping(ref)
}

func openNode(ctx context.Context, e *Entry, h host.Host) {
	openContainerThen(ctx, e, h, e.container.Path, h.OpenContainer)
}

func openIsolated(ctx context.Context, e *Entry, h host.Host) {
	openContainerThen(ctx, e, h, e.assetPath, h.OpenIsolated)
}

// openContainerThen switches to the entry's container and selects the
// object there. When the user declines to save pending edits a loaded
// object is pinged instead.
func openContainerThen(ctx context.Context, e *Entry, h host.Host, path string, open func(string) error) {
	logger := slogcontext.FromCtx(ctx).With("entry", e.DisplayName(), "path", path)

	state := e.Refresh(h)
	if !state.IsLoaded() && !state.IsUnloaded() {
		logger.Warn("cannot open", "state", state.String())
		return
	}

	if h.SaveModifiedIfUserWants() {
		if err := open(path); err != nil {
			logger.Warn("opening container failed", "error", err)
			return
		}
		e.Refresh(h)
		if ref := e.Ref(); ref != nil {
			h.Select(ref)
		}
		return
	}

	if state.IsLoaded() {
		pingRef(ctx, e, h)
	}
}

func openAsset(ctx context.Context, e *Entry, h host.Host) {
	logger := slogcontext.FromCtx(ctx).With("entry", e.DisplayName())
	e.Refresh(h)
	ref := e.Ref()
	if ref == nil {
		logger.Warn("cannot open: asset is gone")
		return
	}
	if err := h.OpenAsset(ref); err != nil {
		logger.Warn("opening asset failed", "error", err)
	}
}

// pingComponentHolders pings every node of the active container carrying a
// component of the entry's type.
func pingComponentHolders(ctx context.Context, e *Entry, h host.Host) {
	logger := slogcontext.FromCtx(ctx).With("component", e.typeName)

	if e.Ref() == nil {
		logger.Warn("cannot ping: component is gone")
		return
	}
	active, ok := h.ActiveContainer()
	if !ok || !h.ContainerLoaded(active) {
		logger.Warn("cannot ping: no loaded active container")
		return
	}

	var holders []host.Node
	host.Walk(h, active, func(n host.Node) {
		for _, c := range n.Components() {
			if c.TypeName() == e.typeName {
				holders = append(holders, n)
				return
			}
		}
	})
	if len(holders) == 0 {
		logger.Info("no nodes carry component", "container", active.Name)
		return
	}

	logger.Debug("pinging component holders", "count", len(holders))
	for _, n := range holders {
		h.Ping(n)
	}
}

func openComponentScript(ctx context.Context, e *Entry, h host.Host) {
	logger := slogcontext.FromCtx(ctx).With("component", e.typeName)

	c, ok := e.Ref().(host.Component)
	if !ok {
		logger.Warn("cannot open: component is gone")
		return
	}
	if !c.Scripted() {
		logger.Warn("built-in components cannot be opened")
		return
	}
	if err := h.RevealScript(c); err != nil {
		logger.Warn("revealing script failed", "error", err)
	}
}
