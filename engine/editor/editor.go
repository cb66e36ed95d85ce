package editor

import (
	"github.com/spaghettifunk/anima-tools/engine/history"
	"github.com/spaghettifunk/anima-tools/engine/resources"
	"github.com/spaghettifunk/anima-tools/engine/scene"
)

const (
	RipperToolName   = "Material Ripper"
	ReplacerToolName = "Material Replacer"

	undoLabelMaterialChange = "Material change"
	undoLabelCreateMaterial = "Create Material"
)

// AssetDatabase is the persistence layer the tools write new assets through.
type AssetDatabase interface {
	CreateFolder(path string) error
	GenerateUniqueAssetPath(path string) string
	CreateAsset(m *resources.Material, path string) error
	DeleteAsset(path string) error
	SaveAssets() error
	Refresh() error
}

// UndoHistory records pre-mutation snapshots and groups them.
type UndoHistory interface {
	CurrentGroup() int
	RecordObjects(label string, objects ...history.Recordable)
	RegisterCreatedObjectUndo(label string, destroy func())
	CollapseUndoOperations(group int)
}

// PrefabUtility classifies nodes and records prefab/dirty state.
type PrefabUtility interface {
	Ownership(n *scene.Node) scene.Ownership
	RecordPrefabInstancePropertyModifications(n *scene.Node)
	SetDirty(n *scene.Node)
}
