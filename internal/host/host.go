package host

// Object is a live handle to something the host owns. Implementations must
// be comparable (pointer types in practice): entries compare handles with ==.
type Object interface {
	Name() string
	// Alive reports whether the host still owns the object. A destroyed
	// object may still answer Name.
	Alive() bool
}

// Node is an object that lives in a container graph.
type Node interface {
	Object
	Container() Container
	Components() []Component
	Children() []Node
}

// Component is a sub-object attached to a node.
type Component interface {
	Object
	// TypeName is the runtime type of the component, e.g. "Rigidbody".
	TypeName() string
	Owner() Node
	// Scripted reports whether the component is backed by user script
	// source that can be revealed.
	Scripted() bool
}

// Icon is an opaque thumbnail reference resolved by the host.
type Icon string

// Container is a scene graph or an isolated content-editing sub-graph.
type Container struct {
	ID   string
	Name string
	Path string
}

// IsZero reports whether the container is unset.
func (c Container) IsZero() bool {
	return c == Container{}
}

// Same reports whether both values name the same, set container.
func (c Container) Same(other Container) bool {
	return c.ID != "" && c.ID == other.ID
}

// IsolatedContext describes an open isolated content-editing context: a
// single persisted asset edited in place of the normal container.
type IsolatedContext struct {
	AssetPath string
	Container Container
}

// Queries are the read-only host lookups. ResolveStableID and ResolveHandle
// are slow but authoritative.
type Queries interface {
	ResolveStableID(o Object) StableID
	// ResolveHandle returns nil when no live object occupies the slot.
	ResolveHandle(id StableID) Object
	ContainerLoaded(c Container) bool
	ActiveContainer() (Container, bool)
	// PersistentContainer is the reserved container holding objects that
	// outlive container switches.
	PersistentContainer() Container
	IsolatedContext() (IsolatedContext, bool)
	InTransientSession() bool
	AssetExists(path string) bool
	AssetPath(o Object) string
	Thumbnail(id StableID, o Object) Icon
}

// Actions are best-effort host side effects.
type Actions interface {
	Ping(o Object)
	Select(o Object)
	// SaveModifiedIfUserWants gives the user a chance to save pending
	// edits before a container switch. False means the switch was declined.
	SaveModifiedIfUserWants() bool
	OpenContainer(path string) error
	OpenIsolated(assetPath string) error
	OpenAsset(o Object) error
	RevealScript(c Component) error
	RootNodes(c Container) []Node
}

// Host is the full collaborator surface.
type Host interface {
	Queries
	Actions
}

// Live reports whether o is a non-nil handle the host still owns.
func Live(o Object) bool {
	return o != nil && o.Alive()
}

// Walk visits every node of c depth-first, parents before children.
func Walk(h Actions, c Container, fn func(Node)) {
	for _, root := range h.RootNodes(c) {
		walkNode(root, fn)
	}
}

func walkNode(n Node, fn func(Node)) {
	if !Live(n) {
		return
	}
	fn(n)
	for _, child := range n.Children() {
		walkNode(child, fn)
	}
}
