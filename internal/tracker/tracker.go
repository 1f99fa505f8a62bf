// Package tracker connects host notifications to the service registry. It
// decides what a selection or container switch records and performs
// history navigation against the host.
package tracker

import (
	"context"
	"fmt"

	slogcontext "github.com/veqryn/slog-context"

	"github.com/agentx-labs/seltrack/internal/config"
	"github.com/agentx-labs/seltrack/internal/entry"
	"github.com/agentx-labs/seltrack/internal/host"
	"github.com/agentx-labs/seltrack/internal/registry"
)

// SaveFunc persists the registry after a batch of changes.
type SaveFunc func(ctx context.Context) error

// Tracker records host events into a registry.
type Tracker struct {
	host  host.Host
	reg   *registry.Registry
	prefs func() config.Preferences
	save  SaveFunc
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithPreferences sets the preference source, consulted on every event.
func WithPreferences(fn func() config.Preferences) Option {
	return func(t *Tracker) { t.prefs = fn }
}

// WithSaveHook sets the function called after a container scan.
func WithSaveHook(fn SaveFunc) Option {
	return func(t *Tracker) { t.save = fn }
}

// New returns a tracker recording into reg.
func New(h host.Host, reg *registry.Registry, opts ...Option) *Tracker {
	t := &Tracker{
		host:  h,
		reg:   reg,
		prefs: config.DefaultPreferences,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Registry returns the registry the tracker records into.
func (t *Tracker) Registry() *registry.Registry { return t.reg }

// OnObjectSelected records the host's new active selection and rebuilds
// the component list from it. It returns the recorded entry, or nil when
// nothing was recorded.
func (t *Tracker) OnObjectSelected(ctx context.Context, obj host.Object) *entry.Entry {
	if obj == nil {
		return nil
	}
	logger := slogcontext.FromCtx(ctx)

	node, isNode := obj.(host.Node)
	if isNode && !t.prefs().RecordNodes {
		logger.Debug("node recording disabled", "object", obj.Name())
		return nil
	}

	e := entry.Classify(t.host, obj)
	if e == nil {
		logger.Debug("object cannot be tracked", "object", obj.Name())
		return nil
	}
	t.reg.RecordSelection(e)
	logger.Debug("recorded selection", "entry", e.DisplayName(), "kind", e.Kind.String())

	list := t.reg.ComponentList
	list.Reset()
	if isNode {
		for _, c := range node.Components() {
			list.Record(entry.Classify(t.host, c))
		}
	}
	list.Refresh()
	return e
}

// OnContainerOpened records one entry per distinct component type found in
// c, then saves. Unloaded containers are skipped with a warning.
func (t *Tracker) OnContainerOpened(ctx context.Context, c host.Container) error {
	logger := slogcontext.FromCtx(ctx).With("container", c.Name)

	if !t.host.ContainerLoaded(c) {
		logger.Warn("container is not loaded, skipping component scan")
		return nil
	}

	seen := make(map[string]struct{})
	host.Walk(t.host, c, func(n host.Node) {
		for _, comp := range n.Components() {
			if !host.Live(comp) {
				continue
			}
			if _, ok := seen[comp.TypeName()]; ok {
				continue
			}
			seen[comp.TypeName()] = struct{}{}
			t.reg.RecordComponent(entry.Classify(t.host, comp))
		}
	})
	t.reg.SceneComponents.Refresh()
	logger.Info("scanned components", "types", len(seen))

	if t.save == nil {
		return nil
	}
	if err := t.save(ctx); err != nil {
		return fmt.Errorf("saving after scanning %s: %w", c.Name, err)
	}
	return nil
}

// RefreshSceneComponents rescans the active container.
func (t *Tracker) RefreshSceneComponents(ctx context.Context) error {
	c, ok := t.host.ActiveContainer()
	if !ok {
		slogcontext.FromCtx(ctx).Warn("no active container to scan")
		return nil
	}
	return t.OnContainerOpened(ctx, c)
}

// Previous steps the history cursor back and jumps to that entry.
func (t *Tracker) Previous(ctx context.Context) *entry.Entry {
	e := t.reg.JumpToPrevious()
	t.jump(ctx, e)
	return e
}

// Next steps the history cursor forward and jumps to that entry.
func (t *Tracker) Next(ctx context.Context) *entry.Entry {
	e := t.reg.JumpToNext()
	t.jump(ctx, e)
	return e
}

// jump selects e's live object. Entries in unloaded containers are pinged
// instead.
func (t *Tracker) jump(ctx context.Context, e *entry.Entry) {
	if e == nil {
		return
	}
	state := e.Refresh(t.host)
	if ref := e.Ref(); ref != nil {
		t.host.Select(ref)
		return
	}
	if state.IsUnloaded() {
		e.Ping(ctx, t.host)
		return
	}
	slogcontext.FromCtx(ctx).Info("history entry is gone", "entry", e.DisplayName(), "state", state.String())
}
