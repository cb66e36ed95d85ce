package scene

import "fmt"

type PrefabKind int

const (
	PrefabNone PrefabKind = iota
	PrefabInstance
	PrefabAsset
)

func (k PrefabKind) String() string {
	switch k {
	case PrefabInstance:
		return "instance"
	case PrefabAsset:
		return "asset"
	default:
		return ""
	}
}

func ParsePrefabKind(s string) (PrefabKind, error) {
	switch s {
	case "":
		return PrefabNone, nil
	case "instance":
		return PrefabInstance, nil
	case "asset":
		return PrefabAsset, nil
	default:
		return PrefabNone, fmt.Errorf("unknown prefab kind %q", s)
	}
}

// Ownership classifies who owns edits made under a node.
type Ownership int

const (
	// OwnershipLoose is a plain scene object, saved with its scene.
	OwnershipLoose Ownership = iota
	// OwnershipPrefabInstance is part of a live, linked copy of a prefab.
	OwnershipPrefabInstance
	// OwnershipPrefabAsset is part of a prefab definition edited directly.
	OwnershipPrefabAsset
)

func (o Ownership) String() string {
	switch o {
	case OwnershipPrefabInstance:
		return "prefab instance"
	case OwnershipPrefabAsset:
		return "prefab asset"
	default:
		return "scene object"
	}
}

// Override is an instance-level property modification recorded against a
// prefab instance root.
type Override struct {
	Path     string
	Property string
}

const MaterialsProperty = "materials"

// PrefabRoot returns the nearest ancestor (or n itself) that is the root of
// a prefab instance or definition, or nil.
func PrefabRoot(n *Node) *Node {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Prefab != PrefabNone {
			return cur
		}
	}
	return nil
}

func IsPartOfPrefabInstance(n *Node) bool {
	root := PrefabRoot(n)
	return root != nil && root.Prefab == PrefabInstance
}

func IsPartOfPrefabAsset(n *Node) bool {
	root := PrefabRoot(n)
	return root != nil && root.Prefab == PrefabAsset
}

func ClassifyOwnership(n *Node) Ownership {
	switch {
	case IsPartOfPrefabInstance(n):
		return OwnershipPrefabInstance
	case IsPartOfPrefabAsset(n):
		return OwnershipPrefabAsset
	default:
		return OwnershipLoose
	}
}

// PrefabUtility is the prefab system backing the in-memory scene graph.
type PrefabUtility struct{}

func (PrefabUtility) Ownership(n *Node) Ownership {
	return ClassifyOwnership(n)
}

// RecordPrefabInstancePropertyModifications records that the material slots
// of n differ from the prefab definition. The override is stored on the
// instance root; recording the same node twice is a no-op.
func (PrefabUtility) RecordPrefabInstancePropertyModifications(n *Node) {
	root := PrefabRoot(n)
	if root == nil || root.Prefab != PrefabInstance {
		return
	}
	o := Override{Path: relativePath(root, n), Property: MaterialsProperty}
	for _, existing := range root.overrides {
		if existing == o {
			return
		}
	}
	root.overrides = append(root.overrides, o)
}

func (PrefabUtility) SetDirty(n *Node) {
	n.SetDirty()
}

func relativePath(root, n *Node) string {
	if root == n {
		return "."
	}
	full, prefix := n.Path(), root.Path()+"/"
	if len(full) > len(prefix) && full[:len(prefix)] == prefix {
		return full[len(prefix):]
	}
	return full
}
