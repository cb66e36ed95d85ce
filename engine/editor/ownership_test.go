package editor

import (
	"testing"

	"github.com/spaghettifunk/anima-tools/engine/scene"
	"github.com/stretchr/testify/assert"
)

func TestPolicyTable(t *testing.T) {
	assert.Equal(t, PolicyActions{RecordUndo: true, RegisterCreated: true, RecordOverride: true, Collapse: true},
		PolicyFor(scene.OwnershipPrefabInstance))
	assert.Equal(t, PolicyActions{RecordUndo: true, RegisterCreated: true, MarkDirty: true, Collapse: true},
		PolicyFor(scene.OwnershipLoose))
	assert.Equal(t, PolicyActions{}, PolicyFor(scene.OwnershipPrefabAsset))
}

func TestOwnershipPolicyClassifiesOnce(t *testing.T) {
	f := newFixture()
	inst := scene.NewNode("Car")
	inst.Prefab = scene.PrefabInstance
	wheel := inst.AddChild(scene.NewNode("Wheel"))

	p := NewOwnershipPolicy(wheel, f.history, f.prefabs)
	assert.Equal(t, scene.OwnershipPrefabInstance, p.Ownership)

	p.BeforeMutation(nil)
	assert.Equal(t, 0, f.history.Len(), "nothing to record")

	p.ComponentMutated(wheel)
	assert.Len(t, inst.Overrides(), 1)
	assert.False(t, wheel.IsDirty())
}

func TestChangeLogNewestFirst(t *testing.T) {
	log := NewChangeLog()
	log.Add("one")
	log.Add("two")
	log.AddBatch("header", []string{"a", "b"})
	assert.Equal(t, []string{"header", "a", "b", "two", "one"}, log.Entries())

	entries := log.Entries()
	entries[0] = "mutated"
	assert.Equal(t, "header", log.Entries()[0])

	log.Clear()
	assert.Equal(t, 0, log.Len())
}
