package scene

import (
	"github.com/spaghettifunk/anima-tools/engine/resources"
)

type Material = resources.Material

// Renderer is a render component: an ordered array of material slots
// attached to a node. Slot order is meaningful and preserved by writes.
type Renderer struct {
	Name string

	node      *Node
	materials []*Material
	revision  uint32
}

func (r *Renderer) Node() *Node {
	return r.node
}

// SharedMaterial returns the primary (slot 0) material.
func (r *Renderer) SharedMaterial() *Material {
	if len(r.materials) == 0 {
		return nil
	}
	return r.materials[0]
}

// SetSharedMaterial writes the primary slot and leaves the others alone.
func (r *Renderer) SetSharedMaterial(m *Material) {
	r.materials[0] = m
	r.revision++
}

// SharedMaterials returns a copy of the slot array.
func (r *Renderer) SharedMaterials() []*Material {
	return append([]*Material(nil), r.materials...)
}

// SetSharedMaterials replaces the whole slot array in a single write.
func (r *Renderer) SetSharedMaterials(materials []*Material) {
	r.materials = append([]*Material(nil), materials...)
	r.revision++
}

func (r *Renderer) SlotCount() int {
	return len(r.materials)
}

// Revision counts the writes made to the slot array.
func (r *Renderer) Revision() uint32 {
	return r.revision
}

// Snapshot captures the slot array so it can be restored by undo.
func (r *Renderer) Snapshot() func() {
	saved := r.SharedMaterials()
	return func() {
		r.materials = saved
		r.revision++
	}
}
