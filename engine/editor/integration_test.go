package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spaghettifunk/anima-tools/engine/assets"
	"github.com/spaghettifunk/anima-tools/engine/history"
	"github.com/spaghettifunk/anima-tools/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRipAndReplaceAgainstAssetDatabase(t *testing.T) {
	am, err := assets.NewAssetManager(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, am.Initialize())

	paint := newMat("Paint")
	require.NoError(t, am.CreateAsset(paint, "Assets/Materials/Paint.amt"))

	s := scene.NewScene("Level")
	car := s.AddRoot(scene.NewNode("Car"))
	body := car.AddRenderer("body", paint)
	door := car.AddChild(scene.NewNode("Door")).AddRenderer("door", paint)

	h := history.New(16)
	var pu scene.PrefabUtility
	created, err := NewRipper(am, h, pu).Rip([]*scene.Node{car}, copyOpts)
	require.NoError(t, err)
	require.Equal(t, []string{"Assets/Temp/Car/Paint (Copy).amt"}, created)

	_, err = os.Stat(filepath.Join(am.ProjectDir(), "Assets", "Temp", "Car", "Paint (Copy).amt"))
	require.NoError(t, err)

	clone, err := am.LoadMaterial(created[0])
	require.NoError(t, err)
	assert.Same(t, clone, body.SharedMaterial())
	assert.Same(t, clone, door.SharedMaterial())
	assert.True(t, s.IsDirty())

	// swap the clone back for the original
	n, err := NewReplacer(h, pu).Replace(car, mats{clone}, mats{paint})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Same(t, paint, body.SharedMaterial())

	// undo the replace, then the rip
	_, err = h.Undo()
	require.NoError(t, err)
	assert.Same(t, clone, body.SharedMaterial())

	_, err = h.Undo()
	require.NoError(t, err)
	assert.Same(t, paint, body.SharedMaterial())
	_, ok := am.Info(created[0])
	assert.False(t, ok, "undoing the rip deletes the created asset")
}
