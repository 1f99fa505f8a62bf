package memhost

import (
	"fmt"
	"slices"

	"github.com/agentx-labs/seltrack/internal/host"
)

// Ping implements host.Actions.
func (h *Host) Ping(o host.Object) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pinged = append(h.pinged, o)
}

// Select implements host.Actions.
func (h *Host) Select(o host.Object) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.selected = append(h.selected, o)
}

// SaveModifiedIfUserWants implements host.Actions.
func (h *Host) SaveModifiedIfUserWants() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.declined
}

// OpenContainer loads the container stored at path and makes it active.
func (h *Host) OpenContainer(path string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, s := range h.scenes {
		if !s.isolated && s.container.Path == path && path != "" {
			s.loaded = true
			h.active = s.container.ID
			h.opened = append(h.opened, path)
			return nil
		}
	}
	return fmt.Errorf("no container at %q", path)
}

// OpenIsolated implements host.Actions.
func (h *Host) OpenIsolated(assetPath string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.assets[assetPath]; !ok {
		return fmt.Errorf("no asset at %q", assetPath)
	}
	h.openIsolated(assetPath)
	h.opened = append(h.opened, assetPath)
	return nil
}

// OpenAsset implements host.Actions.
func (h *Host) OpenAsset(o host.Object) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	a, ok := o.(*Asset)
	if !ok || !a.Alive() {
		return fmt.Errorf("not a live asset")
	}
	h.opened = append(h.opened, a.path)
	return nil
}

// RevealScript implements host.Actions.
func (h *Host) RevealScript(c host.Component) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !c.Scripted() {
		return fmt.Errorf("component %s has no script", c.TypeName())
	}
	h.revealed = append(h.revealed, c)
	return nil
}

// RootNodes implements host.Actions. Unloaded containers have no roots.
func (h *Host) RootNodes(c host.Container) []host.Node {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.scenes[c.ID]
	if !ok || !s.loaded {
		return nil
	}
	out := make([]host.Node, 0, len(s.roots))
	for _, n := range s.roots {
		out = append(out, n)
	}
	return out
}

// Pinged returns the objects pinged so far.
func (h *Host) Pinged() []host.Object {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.pinged)
}

// Selected returns the objects selected so far.
func (h *Host) Selected() []host.Object {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.selected)
}

// Opened returns the container and asset paths opened so far.
func (h *Host) Opened() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.opened)
}

// Revealed returns the components whose scripts were revealed.
func (h *Host) Revealed() []host.Component {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.revealed)
}

var _ host.Host = (*Host)(nil)
