// Package offline provides a detached host.Host used when no authoring tool
// is running, e.g. by the CLI inspecting persisted state. Nothing resolves to
// a live handle and no container is loaded; asset existence is answered from
// the project directory on disk.
package offline

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/agentx-labs/seltrack/internal/host"
)

// ErrDetached is returned by actions that need a running host.
var ErrDetached = errors.New("no host attached")

// Host is a detached host rooted at a project directory.
type Host struct {
	projectDir string
}

// New returns a detached host. With an empty projectDir every asset is
// assumed to exist, since absence cannot be proven.
func New(projectDir string) *Host {
	return &Host{projectDir: projectDir}
}

func (h *Host) ResolveStableID(host.Object) host.StableID      { return host.StableID{} }
func (h *Host) ResolveHandle(host.StableID) host.Object        { return nil }
func (h *Host) ContainerLoaded(host.Container) bool            { return false }
func (h *Host) ActiveContainer() (host.Container, bool)        { return host.Container{}, false }
func (h *Host) PersistentContainer() host.Container            { return host.Container{} }
func (h *Host) IsolatedContext() (host.IsolatedContext, bool)  { return host.IsolatedContext{}, false }
func (h *Host) InTransientSession() bool                       { return false }
func (h *Host) AssetPath(host.Object) string                   { return "" }
func (h *Host) Thumbnail(host.StableID, host.Object) host.Icon { return "" }

// AssetExists reports whether path exists below the project directory.
func (h *Host) AssetExists(path string) bool {
	if path == "" {
		return false
	}
	if h.projectDir == "" {
		return true
	}
	_, err := os.Stat(filepath.Join(h.projectDir, filepath.FromSlash(path)))
	return err == nil
}

func (h *Host) Ping(host.Object)                  {}
func (h *Host) Select(host.Object)                {}
func (h *Host) SaveModifiedIfUserWants() bool     { return false }
func (h *Host) OpenContainer(string) error        { return ErrDetached }
func (h *Host) OpenIsolated(string) error         { return ErrDetached }
func (h *Host) OpenAsset(host.Object) error       { return ErrDetached }
func (h *Host) RevealScript(host.Component) error { return ErrDetached }
func (h *Host) RootNodes(host.Container) []host.Node {
	return nil
}

var _ host.Host = (*Host)(nil)
