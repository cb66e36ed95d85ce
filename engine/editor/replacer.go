package editor

import (
	"fmt"

	"github.com/spaghettifunk/anima-tools/engine/core"
	"github.com/spaghettifunk/anima-tools/engine/resources"
	"github.com/spaghettifunk/anima-tools/engine/scene"
	"golang.org/x/exp/slices"
)

// ReplacementMapping substitutes Find[i] with Replace[i]. Matching is by
// identity and position, never by name.
type ReplacementMapping struct {
	Find    []*resources.Material
	Replace []*resources.Material
}

func (m ReplacementMapping) Validate() error {
	if slices.Contains(m.Find, nil) || slices.Contains(m.Replace, nil) {
		return core.ErrNilMaterial
	}
	if len(m.Find) == 0 || len(m.Replace) == 0 {
		return core.ErrEmptyMapping
	}
	if len(m.Find) != len(m.Replace) {
		return core.ErrMappingLength
	}
	return nil
}

// Matches reports whether any slot holds a material from Find.
func (m ReplacementMapping) Matches(slots []*resources.Material) bool {
	return slices.ContainsFunc(slots, func(mat *resources.Material) bool {
		return slices.Contains(m.Find, mat)
	})
}

// Apply returns a new slot array of the same length where every slot equal
// to some Find[i] (first match wins) becomes Replace[i].
func (m ReplacementMapping) Apply(slots []*resources.Material) []*resources.Material {
	out := make([]*resources.Material, len(slots))
	for i, mat := range slots {
		if idx := slices.Index(m.Find, mat); idx != -1 {
			out[i] = m.Replace[idx]
		} else {
			out[i] = mat
		}
	}
	return out
}

// Replacer rewrites material slot arrays across a hierarchy.
type Replacer struct {
	history UndoHistory
	prefabs PrefabUtility
}

func NewReplacer(h UndoHistory, p PrefabUtility) *Replacer {
	return &Replacer{history: h, prefabs: p}
}

// Replace substitutes find[i] with replace[i] in every renderer under root,
// inactive ones included, and returns the number of renderers modified.
// Any precondition violation is logged and returned before anything is
// mutated.
func (r *Replacer) Replace(root *scene.Node, find, replace []*resources.Material) (int, error) {
	if root == nil {
		core.LogError("%s: Parent can not be null.", ReplacerToolName)
		return 0, core.ErrNilRoot
	}
	mapping := ReplacementMapping{Find: find, Replace: replace}
	if err := mapping.Validate(); err != nil {
		switch err {
		case core.ErrNilMaterial:
			core.LogError("%s: Null elements are not allowed.", ReplacerToolName)
		default:
			core.LogError("%s: Element counts must match.", ReplacerToolName)
		}
		return 0, err
	}

	var targets []*scene.Renderer
	for _, rd := range root.Renderers(true) {
		if mapping.Matches(rd.SharedMaterials()) {
			targets = append(targets, rd)
		}
	}
	if len(targets) == 0 {
		return 0, nil
	}

	group := r.history.CurrentGroup()
	policy := NewOwnershipPolicy(root, r.history, r.prefabs)
	policy.BeforeMutation(targets)

	for _, rd := range targets {
		rd.SetSharedMaterials(mapping.Apply(rd.SharedMaterials()))
		policy.ComponentMutated(root)
	}
	policy.Finish(group)

	core.LogDebug("%s: %s (%s) renderers modified: %d", ReplacerToolName, root.Name, policy.Ownership, len(targets))
	return len(targets), nil
}

// ReplaceWithLog runs Replace and records the outcome in log.
func (r *Replacer) ReplaceWithLog(root *scene.Node, find, replace []*resources.Material, log *ChangeLog) (int, error) {
	n, err := r.Replace(root, find, replace)
	if root != nil {
		log.Add(fmt.Sprintf("%s renderers modified: %d", root.Name, n))
	}
	return n, err
}
