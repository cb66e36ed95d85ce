package editor

import (
	"fmt"

	"github.com/spaghettifunk/anima-tools/engine/core"
	"github.com/spaghettifunk/anima-tools/engine/resources"
	"github.com/spaghettifunk/anima-tools/engine/scene"
)

// GatherMaterials returns the distinct materials, in first-seen order,
// referenced by any slot of the active renderers under root. Empty slots
// are left out so the result is usable as a find list.
func GatherMaterials(root *scene.Node) ([]*resources.Material, error) {
	if root == nil {
		core.LogError("%s: Parent is not set.", ReplacerToolName)
		return nil, core.ErrNilRoot
	}
	seen := make(map[*resources.Material]struct{})
	var out []*resources.Material
	for _, rd := range root.Renderers(false) {
		for _, m := range rd.SharedMaterials() {
			if m == nil {
				continue
			}
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	return out, nil
}

// GatherMaterialsWithLog runs GatherMaterials and records the count in log.
func GatherMaterialsWithLog(root *scene.Node, log *ChangeLog) ([]*resources.Material, error) {
	materials, err := GatherMaterials(root)
	if root != nil {
		log.Add(fmt.Sprintf("%s unique materials found: %d", root.Name, len(materials)))
	}
	return materials, err
}
