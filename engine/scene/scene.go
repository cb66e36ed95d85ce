package scene

import (
	"strconv"
	"strings"

	"github.com/spaghettifunk/anima-tools/engine/core"
)

// Scene is a loaded scene or prefab document: an ordered list of root nodes.
type Scene struct {
	Name string
	// Path is the document the scene was loaded from, if any.
	Path string
	// IsPrefab marks a prefab definition document. Its roots are prefab assets.
	IsPrefab bool
	Roots    []*Node

	ids *core.IdentifierPool
}

func NewScene(name string) *Scene {
	return &Scene{
		Name: name,
		ids:  core.NewIdentifierPool(64),
	}
}

// AddRoot appends a root node and assigns ids to its subtree.
func (s *Scene) AddRoot(n *Node) *Node {
	if s.IsPrefab && n.Prefab == PrefabNone {
		n.Prefab = PrefabAsset
	}
	n.Walk(true, func(node *Node) bool {
		node.ID = s.ids.Acquire(node)
		return true
	})
	s.Roots = append(s.Roots, n)
	return n
}

// NodeByID resolves an id assigned by AddRoot.
func (s *Scene) NodeByID(id uint32) *Node {
	n, _ := s.ids.Owner(id).(*Node)
	return n
}

// Lookup resolves a node selector: "#<id>" names a node by id, anything
// else is matched by name as in Find.
func (s *Scene) Lookup(selector string) *Node {
	if rest, ok := strings.CutPrefix(selector, "#"); ok {
		id, err := strconv.ParseUint(rest, 10, 32)
		if err != nil {
			return nil
		}
		return s.NodeByID(uint32(id))
	}
	return s.Find(selector)
}

// Find returns the first node with the given name across all roots.
func (s *Scene) Find(name string) *Node {
	for _, r := range s.Roots {
		if n := r.Find(name); n != nil {
			return n
		}
	}
	return nil
}

// IsDirty reports whether any node was marked dirty since the last save.
func (s *Scene) IsDirty() bool {
	for _, r := range s.Roots {
		dirty := false
		r.Walk(true, func(n *Node) bool {
			dirty = n.IsDirty()
			return !dirty
		})
		if dirty {
			return true
		}
	}
	return false
}

func (s *Scene) ClearDirty() {
	for _, r := range s.Roots {
		r.ClearDirty()
	}
}
