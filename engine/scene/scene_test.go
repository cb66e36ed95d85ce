package scene

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/anima-tools/engine/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapResolver map[string]*Material

func (r mapResolver) LoadMaterial(path string) (*Material, error) {
	if m, ok := r[path]; ok {
		return m, nil
	}
	m := resources.NewMaterial(&resources.MaterialConfig{Name: filepath.Base(path)})
	m.AssetPath = path
	r[path] = m
	return m, nil
}

func mat(name string) *Material {
	m := resources.NewMaterial(&resources.MaterialConfig{Name: name})
	m.AssetPath = "Assets/" + name + ".amt"
	return m
}

func TestRenderersTraversalOrderAndInactive(t *testing.T) {
	root := NewNode("Root")
	root.AddRenderer("root")
	a := root.AddChild(NewNode("A"))
	a.AddRenderer("a")
	hidden := a.AddChild(NewNode("Hidden"))
	hidden.Active = false
	hidden.AddRenderer("hidden")
	hidden.AddChild(NewNode("UnderHidden")).AddRenderer("under-hidden")
	root.AddChild(NewNode("B")).AddRenderer("b")

	names := func(rs []*Renderer) []string {
		var out []string
		for _, r := range rs {
			out = append(out, r.Name)
		}
		return out
	}

	assert.Equal(t, []string{"root", "a", "hidden", "under-hidden", "b"}, names(root.Renderers(true)))
	assert.Equal(t, []string{"root", "a", "b"}, names(root.Renderers(false)))
}

func TestRendererWrites(t *testing.T) {
	m1, m2, m3 := mat("M1"), mat("M2"), mat("M3")
	r := NewNode("N").AddRenderer("mesh", m1, m2)

	assert.Same(t, m1, r.SharedMaterial())
	r.SetSharedMaterial(m3)
	assert.Equal(t, []*Material{m3, m2}, r.SharedMaterials())
	assert.Equal(t, uint32(1), r.Revision())

	in := []*Material{m2, m1}
	r.SetSharedMaterials(in)
	in[0] = m3
	assert.Same(t, m2, r.SharedMaterial(), "slot array is copied on write")
	assert.Equal(t, uint32(2), r.Revision())

	restore := r.Snapshot()
	r.SetSharedMaterials([]*Material{m3, m3})
	restore()
	assert.Equal(t, []*Material{m2, m1}, r.SharedMaterials())
}

func TestAddRendererAlwaysHasOneSlot(t *testing.T) {
	r := NewNode("N").AddRenderer("empty")
	assert.Equal(t, 1, r.SlotCount())
	assert.Nil(t, r.SharedMaterial())
}

func TestClassifyOwnership(t *testing.T) {
	loose := NewNode("Loose")
	child := loose.AddChild(NewNode("Child"))
	assert.Equal(t, OwnershipLoose, ClassifyOwnership(child))

	inst := NewNode("Car")
	inst.Prefab = PrefabInstance
	wheel := inst.AddChild(NewNode("Wheel"))
	assert.Equal(t, OwnershipPrefabInstance, ClassifyOwnership(wheel))
	assert.True(t, IsPartOfPrefabInstance(wheel))

	def := NewNode("CarPrefab")
	def.Prefab = PrefabAsset
	door := def.AddChild(NewNode("Door"))
	assert.Equal(t, OwnershipPrefabAsset, ClassifyOwnership(door))
	assert.False(t, IsPartOfPrefabInstance(door))
}

func TestRecordPrefabInstancePropertyModifications(t *testing.T) {
	inst := NewNode("Car")
	inst.Prefab = PrefabInstance
	wheel := inst.AddChild(NewNode("Wheel"))

	var pu PrefabUtility
	pu.RecordPrefabInstancePropertyModifications(wheel)
	pu.RecordPrefabInstancePropertyModifications(wheel)
	pu.RecordPrefabInstancePropertyModifications(inst)

	assert.Equal(t, []Override{
		{Path: "Wheel", Property: MaterialsProperty},
		{Path: ".", Property: MaterialsProperty},
	}, inst.Overrides())
	assert.False(t, wheel.IsDirty())

	loose := NewNode("Loose")
	pu.RecordPrefabInstancePropertyModifications(loose)
	assert.Empty(t, loose.Overrides())
}

func TestSceneDocumentRoundTrip(t *testing.T) {
	src := []byte(`
name = "Level01"
kind = "scene"

[[nodes]]
name = "Car"
prefab = "instance"
prefab_source = "Assets/Prefabs/Car.prefab.toml"
overrides = ["Body:materials"]

  [[nodes.renderers]]
  name = "Body"
  materials = ["Assets/Paint.amt", "Assets/Chrome.amt"]

  [[nodes.children]]
  name = "Wheel"
  active = false

    [[nodes.children.renderers]]
    name = "Tyre"
    materials = ["Assets/Rubber.amt"]

[[nodes]]
name = "Props"

  [[nodes.renderers]]
  name = "Crate"
  materials = ["Assets/Paint.amt"]
`)
	resolver := mapResolver{}
	s, err := Decode(src, resolver)
	require.NoError(t, err)
	require.Len(t, s.Roots, 2)
	assert.Equal(t, "Level01", s.Name)

	car := s.Find("Car")
	require.NotNil(t, car)
	assert.Equal(t, PrefabInstance, car.Prefab)
	assert.Equal(t, []Override{{Path: "Body", Property: "materials"}}, car.Overrides())

	wheel := s.Find("Wheel")
	require.NotNil(t, wheel)
	assert.False(t, wheel.Active)
	assert.Same(t, wheel, s.NodeByID(wheel.ID))
	assert.Same(t, wheel, s.Lookup(fmt.Sprintf("#%d", wheel.ID)))
	assert.Same(t, car, s.Lookup("Car"))
	assert.Nil(t, s.Lookup("#nope"))
	assert.Nil(t, s.Lookup("#999"))

	paint := resolver["Assets/Paint.amt"]
	crate := s.Find("Props").OwnRenderers()[0]
	assert.Same(t, paint, crate.SharedMaterial(), "same path resolves to one material")
	assert.Same(t, paint, car.OwnRenderers()[0].SharedMaterial())

	out, err := s.Encode()
	require.NoError(t, err)
	again, err := Decode(out, resolver)
	require.NoError(t, err)
	assert.Equal(t, "Car/Wheel", again.Find("Wheel").Path())
	assert.False(t, again.Find("Wheel").Active)
	assert.Equal(t, car.Overrides(), again.Find("Car").Overrides())
	assert.Equal(t, 2, again.Find("Car").OwnRenderers()[0].SlotCount())
}

func TestPrefabDocumentMarksRootsAsAssets(t *testing.T) {
	src := []byte(`
name = "Car"
kind = "prefab"

[[nodes]]
name = "Car"

  [[nodes.children]]
  name = "Door"
`)
	s, err := Decode(src, mapResolver{})
	require.NoError(t, err)
	assert.True(t, s.IsPrefab)
	assert.Equal(t, OwnershipPrefabAsset, ClassifyOwnership(s.Find("Door")))

	out, err := s.Encode()
	require.NoError(t, err)
	assert.NotContains(t, string(out), "asset")
}

func TestSaveFileClearsDirty(t *testing.T) {
	s := NewScene("Level")
	root := s.AddRoot(NewNode("Root"))
	root.AddRenderer("mesh", mat("Stone"))
	root.SetDirty()
	require.True(t, s.IsDirty())

	path := filepath.Join(t.TempDir(), "level.scene.toml")
	require.NoError(t, s.SaveFile(path))
	assert.False(t, s.IsDirty())

	loaded, err := LoadFile(path, mapResolver{})
	require.NoError(t, err)
	assert.Equal(t, path, loaded.Path)
	assert.Equal(t, "Assets/Stone.amt", loaded.Roots[0].OwnRenderers()[0].SharedMaterial().AssetPath)
}

func TestEncodeRejectsUnsavedMaterial(t *testing.T) {
	s := NewScene("Level")
	root := s.AddRoot(NewNode("Root"))
	root.AddRenderer("mesh", resources.NewMaterial(&resources.MaterialConfig{Name: "Temp"}))
	_, err := s.Encode()
	assert.Error(t, err)
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"unknown kind":   "name = 'x'\nkind = 'level'\n",
		"unnamed node":   "name = 'x'\n[[nodes]]\nactive = true\n",
		"bad prefab":     "name = 'x'\n[[nodes]]\nname = 'n'\nprefab = 'variant'\n",
		"bad override":   "name = 'x'\n[[nodes]]\nname = 'n'\noverrides = ['nocolon']\n",
		"malformed toml": "name = ",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(src), mapResolver{})
			assert.Error(t, err, fmt.Sprintf("expected %s to fail", name))
		})
	}
}
