package scene

import (
	"strings"
)

// Node is an addressable point in a scene hierarchy. Nodes are compared by
// identity; two nodes with the same name are distinct.
type Node struct {
	ID       uint32
	Name     string
	Active   bool
	Parent   *Node
	Children []*Node

	// Prefab is set on the root of a prefab instance or prefab definition;
	// descendants inherit the classification of their nearest prefab root.
	Prefab       PrefabKind
	PrefabSource string

	renderers []*Renderer
	dirty     bool
	overrides []Override
}

func NewNode(name string) *Node {
	return &Node{Name: name, Active: true}
}

// AddChild parents child under n and returns child.
func (n *Node) AddChild(child *Node) *Node {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			return
		}
	}
}

// AddRenderer attaches a render component with the given material slots.
// A renderer always has at least one slot.
func (n *Node) AddRenderer(name string, materials ...*Material) *Renderer {
	if len(materials) == 0 {
		materials = []*Material{nil}
	}
	r := &Renderer{
		Name:      name,
		node:      n,
		materials: append([]*Material(nil), materials...),
	}
	n.renderers = append(n.renderers, r)
	return r
}

// OwnRenderers returns the renderers attached directly to n.
func (n *Node) OwnRenderers() []*Renderer {
	return n.renderers
}

// Renderers enumerates every renderer in the subtree rooted at n, depth
// first, the node's own renderers before its children's. Inactive nodes and
// their subtrees are skipped unless includeInactive is set.
func (n *Node) Renderers(includeInactive bool) []*Renderer {
	var out []*Renderer
	n.Walk(includeInactive, func(node *Node) bool {
		out = append(out, node.renderers...)
		return true
	})
	return out
}

// Walk visits n and its descendants in pre-order. Returning false from fn
// stops the walk.
func (n *Node) Walk(includeInactive bool, fn func(*Node) bool) bool {
	if !includeInactive && !n.Active {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.Walk(includeInactive, fn) {
			return false
		}
	}
	return true
}

// Find returns the first node named name in the subtree, including n.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(true, func(node *Node) bool {
		if node.Name == name {
			found = node
			return false
		}
		return true
	})
	return found
}

// Path returns the slash separated names from the hierarchy root to n.
func (n *Node) Path() string {
	var parts []string
	for cur := n; cur != nil; cur = cur.Parent {
		parts = append(parts, cur.Name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

func (n *Node) Root() *Node {
	cur := n
	for cur.Parent != nil {
		cur = cur.Parent
	}
	return cur
}

func (n *Node) IsDirty() bool {
	return n.dirty
}

func (n *Node) SetDirty() {
	n.dirty = true
}

func (n *Node) ClearDirty() {
	n.Walk(true, func(node *Node) bool {
		node.dirty = false
		return true
	})
}

// Overrides returns the instance-level property modifications recorded on n.
// Only prefab instance roots carry overrides.
func (n *Node) Overrides() []Override {
	return n.overrides
}
