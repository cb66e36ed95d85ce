package editor

import (
	"github.com/spaghettifunk/anima-tools/engine/core"
	"github.com/spaghettifunk/anima-tools/engine/history"
	"github.com/spaghettifunk/anima-tools/engine/scene"
)

// PolicyActions is the set of undo/dirty side effects applied when the
// components under a root are mutated.
type PolicyActions struct {
	RecordUndo      bool
	RegisterCreated bool
	RecordOverride  bool
	MarkDirty       bool
	Collapse        bool
}

var ownershipPolicies = map[scene.Ownership]PolicyActions{
	scene.OwnershipPrefabInstance: {
		RecordUndo:      true,
		RegisterCreated: true,
		RecordOverride:  true,
		Collapse:        true,
	},
	scene.OwnershipLoose: {
		RecordUndo:      true,
		RegisterCreated: true,
		MarkDirty:       true,
		Collapse:        true,
	},
	// Prefab definitions commit through the asset database directly.
	scene.OwnershipPrefabAsset: {},
}

// PolicyFor returns the actions for an ownership classification.
func PolicyFor(o scene.Ownership) PolicyActions {
	return ownershipPolicies[o]
}

// OwnershipPolicy is the classification of one root, evaluated once before
// its subtree is mutated, plus the collaborators its actions go through.
type OwnershipPolicy struct {
	Ownership scene.Ownership
	Actions   PolicyActions

	history UndoHistory
	prefabs PrefabUtility
}

func NewOwnershipPolicy(root *scene.Node, h UndoHistory, p PrefabUtility) *OwnershipPolicy {
	o := p.Ownership(root)
	return &OwnershipPolicy{
		Ownership: o,
		Actions:   PolicyFor(o),
		history:   h,
		prefabs:   p,
	}
}

// BeforeMutation records the components about to change.
func (p *OwnershipPolicy) BeforeMutation(renderers []*scene.Renderer) {
	if !p.Actions.RecordUndo || len(renderers) == 0 {
		return
	}
	objects := make([]history.Recordable, len(renderers))
	for i, r := range renderers {
		objects[i] = r
	}
	p.history.RecordObjects(undoLabelMaterialChange, objects...)
}

// ObjectCreated registers a newly created asset so undo destroys it.
func (p *OwnershipPolicy) ObjectCreated(destroy func()) {
	if p.Actions.RegisterCreated {
		p.history.RegisterCreatedObjectUndo(undoLabelCreateMaterial, destroy)
	}
}

// ComponentMutated is applied once per mutated component.
func (p *OwnershipPolicy) ComponentMutated(target *scene.Node) {
	switch {
	case p.Actions.RecordOverride:
		p.prefabs.RecordPrefabInstancePropertyModifications(target)
	case p.Actions.MarkDirty:
		p.prefabs.SetDirty(target)
	}
}

// Finish collapses every undo step recorded since group into one.
func (p *OwnershipPolicy) Finish(group int) {
	if p.Actions.Collapse {
		p.history.CollapseUndoOperations(group)
		core.LogDebug("collapsed undo operations into group %d (%s)", group, p.Ownership)
	}
}
