// Package memhost is an in-memory host.Host. It models containers, nodes,
// components and assets closely enough to exercise identity resolution and
// lifecycle states, and records every action it is asked to perform.
package memhost

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/agentx-labs/seltrack/internal/host"
)

// PersistentContainerName names the reserved container for objects that
// outlive container switches.
const PersistentContainerName = "PersistentObjects"

type scene struct {
	container host.Container
	loaded    bool
	isolated  bool
	roots     []*Node
}

// Host is an in-memory host. The zero value is not usable; call New.
type Host struct {
	mu sync.Mutex

	scenes     map[string]*scene
	objects    map[host.StableID]host.Object
	ids        map[host.Object]host.StableID
	assets     map[string]*Asset
	persistent host.Container
	isolated   *host.IsolatedContext
	active     string
	transient  bool
	declined   bool
	next       uint64

	pinged         []host.Object
	selected       []host.Object
	opened         []string
	revealed       []host.Component
	thumbnailCalls int
}

// New returns a host with only the persistent container.
func New() *Host {
	h := &Host{
		scenes:  make(map[string]*scene),
		objects: make(map[host.StableID]host.Object),
		ids:     make(map[host.Object]host.StableID),
		assets:  make(map[string]*Asset),
	}
	h.persistent = h.addScene(PersistentContainerName, "", false).container
	return h
}

func (h *Host) addScene(name, path string, isolated bool) *scene {
	h.next++
	s := &scene{
		container: host.Container{
			ID:   "c" + strconv.FormatUint(h.next, 10),
			Name: name,
			Path: path,
		},
		loaded:   true,
		isolated: isolated,
	}
	h.scenes[s.container.ID] = s
	return s
}

// AddContainer adds a loaded scene container. The first one added becomes
// the active container.
func (h *Host) AddContainer(name, path string) host.Container {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := h.addScene(name, path, false)
	if h.active == "" {
		h.active = s.container.ID
	}
	return s.container
}

// SetLoaded loads or unloads a container.
func (h *Host) SetLoaded(c host.Container, loaded bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s, ok := h.scenes[c.ID]; ok {
		s.loaded = loaded
	}
}

// SetActive marks c as the active container.
func (h *Host) SetActive(c host.Container) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.active = c.ID
}

// PersistentContainer implements host.Queries.
func (h *Host) PersistentContainer() host.Container {
	return h.persistent
}

// AddNode creates a node in c, under parent when parent is non-nil. Nodes in
// ordinary containers get scene-object identifiers; nodes in the persistent
// container or an isolated context get untyped ones.
func (h *Host) AddNode(c host.Container, name string, parent *Node) *Node {
	h.mu.Lock()
	defer h.mu.Unlock()

	s, ok := h.scenes[c.ID]
	if !ok {
		panic(fmt.Sprintf("memhost: unknown container %q", c.ID))
	}

	n := &Node{name: name, container: s.container}
	if parent != nil {
		parent.children = append(parent.children, n)
	} else {
		s.roots = append(s.roots, n)
	}

	kind := host.IDSceneObject
	if s.isolated || s.container.Same(h.persistent) {
		kind = host.IDNone
	}
	h.register(n, h.newID(kind, s.container.ID))
	return n
}

// AddComponent attaches a component of the given runtime type to n.
func (h *Host) AddComponent(n *Node, typeName string, scripted bool) *Component {
	h.mu.Lock()
	defer h.mu.Unlock()

	c := &Component{typeName: typeName, owner: n, scripted: scripted}
	n.components = append(n.components, c)
	h.register(c, h.newID(host.IDSceneObject, n.container.ID))
	return c
}

// AddAsset creates a persisted asset. kind should be IDImportedAsset or
// IDSourceAsset.
func (h *Host) AddAsset(path, name string, kind host.IDKind) *Asset {
	h.mu.Lock()
	defer h.mu.Unlock()

	a := &Asset{name: name, path: path}
	h.assets[path] = a
	h.register(a, h.newID(kind, "asset:"+path))
	return a
}

func (h *Host) newID(kind host.IDKind, container string) host.StableID {
	h.next++
	return host.StableID{Kind: kind, Container: container, Object: h.next}
}

func (h *Host) register(o host.Object, id host.StableID) {
	h.objects[id] = o
	h.ids[o] = id
}

// DeleteAsset removes the asset file and kills its handle.
func (h *Host) DeleteAsset(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if a, ok := h.assets[path]; ok {
		a.dead = true
		delete(h.assets, path)
	}
}

// Destroy kills o's handle. Node destruction also destroys its components
// and children.
func (h *Host) Destroy(o host.Object) {
	h.mu.Lock()
	defer h.mu.Unlock()
	destroy(o)
}

func destroy(o host.Object) {
	switch v := o.(type) {
	case *Node:
		v.dead = true
		for _, c := range v.components {
			c.dead = true
		}
		for _, child := range v.children {
			destroy(child)
		}
	case *Component:
		v.dead = true
	case *Asset:
		v.dead = true
	}
}

// Reincarnate destroys n and puts a fresh node with the same StableID in its
// slot, the way a transient session boundary rebuilds a container.
func (h *Host) Reincarnate(n *Node) *Node {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.ids[n]
	destroy(n)

	fresh := &Node{name: n.name, container: n.container}
	if s, ok := h.scenes[n.container.ID]; ok {
		for i, root := range s.roots {
			if root == n {
				s.roots[i] = fresh
			}
		}
	}
	h.register(fresh, id)
	return fresh
}

// SetTransient enters or leaves a transient execution session.
func (h *Host) SetTransient(on bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.transient = on
}

// DeclineSave makes SaveModifiedIfUserWants answer false.
func (h *Host) DeclineSave(declined bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.declined = declined
}

// OpenIsolatedContext opens an isolated editing context for assetPath and
// returns its container.
func (h *Host) OpenIsolatedContext(assetPath string) host.Container {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.openIsolated(assetPath)
}

func (h *Host) openIsolated(assetPath string) host.Container {
	for _, s := range h.scenes {
		if s.isolated && s.container.Path == assetPath {
			s.loaded = true
			h.isolated = &host.IsolatedContext{AssetPath: assetPath, Container: s.container}
			return s.container
		}
	}
	s := h.addScene(assetPath, assetPath, true)
	h.isolated = &host.IsolatedContext{AssetPath: assetPath, Container: s.container}
	return s.container
}

// CloseIsolatedContext unloads the open isolated context, if any.
func (h *Host) CloseIsolatedContext() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.isolated == nil {
		return
	}
	if s, ok := h.scenes[h.isolated.Container.ID]; ok {
		s.loaded = false
	}
	h.isolated = nil
}

// ResolveStableID implements host.Queries.
func (h *Host) ResolveStableID(o host.Object) host.StableID {
	h.mu.Lock()
	defer h.mu.Unlock()
	if o == nil {
		return host.StableID{}
	}
	return h.ids[o]
}

// ResolveHandle implements host.Queries. Objects in unloaded containers and
// dead objects do not resolve.
func (h *Host) ResolveHandle(id host.StableID) host.Object {
	h.mu.Lock()
	defer h.mu.Unlock()

	o, ok := h.objects[id]
	if !ok || !o.Alive() {
		return nil
	}
	switch v := o.(type) {
	case *Node:
		if !h.loaded(v.container) {
			return nil
		}
	case *Component:
		if !h.loaded(v.owner.container) {
			return nil
		}
	}
	return o
}

func (h *Host) loaded(c host.Container) bool {
	s, ok := h.scenes[c.ID]
	return ok && s.loaded
}

// ContainerLoaded implements host.Queries.
func (h *Host) ContainerLoaded(c host.Container) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.loaded(c)
}

// ActiveContainer implements host.Queries.
func (h *Host) ActiveContainer() (host.Container, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.scenes[h.active]
	if !ok {
		return host.Container{}, false
	}
	return s.container, true
}

// IsolatedContext implements host.Queries.
func (h *Host) IsolatedContext() (host.IsolatedContext, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.isolated == nil {
		return host.IsolatedContext{}, false
	}
	return *h.isolated, true
}

// InTransientSession implements host.Queries.
func (h *Host) InTransientSession() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.transient
}

// AssetExists implements host.Queries.
func (h *Host) AssetExists(path string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, ok := h.assets[path]
	return ok
}

// AssetPath implements host.Queries.
func (h *Host) AssetPath(o host.Object) string {
	if a, ok := o.(*Asset); ok {
		return a.path
	}
	return ""
}

// Thumbnail implements host.Queries.
func (h *Host) Thumbnail(_ host.StableID, o host.Object) host.Icon {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.thumbnailCalls++

	switch v := o.(type) {
	case *Component:
		return host.Icon("component:" + v.typeName)
	case *Asset:
		return host.Icon("asset")
	default:
		return host.Icon("node")
	}
}

// ThumbnailCalls returns how many thumbnail lookups reached the host.
func (h *Host) ThumbnailCalls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.thumbnailCalls
}
