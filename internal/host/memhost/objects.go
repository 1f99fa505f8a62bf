package memhost

import "github.com/agentx-labs/seltrack/internal/host"

// Node is an in-memory scene node.
type Node struct {
	name       string
	container  host.Container
	components []*Component
	children   []*Node
	dead       bool
}

func (n *Node) Name() string              { return n.name }
func (n *Node) Alive() bool               { return n != nil && !n.dead }
func (n *Node) Container() host.Container { return n.container }

func (n *Node) Components() []host.Component {
	out := make([]host.Component, 0, len(n.components))
	for _, c := range n.components {
		if c.Alive() {
			out = append(out, c)
		}
	}
	return out
}

func (n *Node) Children() []host.Node {
	out := make([]host.Node, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	return out
}

// Component is an in-memory component.
type Component struct {
	typeName string
	owner    *Node
	scripted bool
	dead     bool
}

func (c *Component) Name() string     { return c.owner.name }
func (c *Component) Alive() bool      { return c != nil && !c.dead }
func (c *Component) TypeName() string { return c.typeName }
func (c *Component) Owner() host.Node { return c.owner }
func (c *Component) Scripted() bool   { return c.scripted }

// Asset is an in-memory persisted asset.
type Asset struct {
	name string
	path string
	dead bool
}

func (a *Asset) Name() string { return a.name }
func (a *Asset) Alive() bool  { return a != nil && !a.dead }
func (a *Asset) Path() string { return a.path }
