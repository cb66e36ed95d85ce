package resources

import (
	"testing"

	"github.com/google/uuid"
	"github.com/spaghettifunk/anima-tools/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneCopiesPropertiesWithNewIdentity(t *testing.T) {
	orig := NewMaterial(&MaterialConfig{
		Name:           "Brick",
		ShaderName:     "Builtin.MaterialShader",
		DiffuseColour:  math.NewVec4(0.5, 0.25, 0.1, 1),
		Shininess:      12,
		DiffuseMapName: "brick_diffuse",
	})
	orig.AssetPath = "Assets/Brick.amt"
	orig.Generation = 3

	clone := orig.Clone()
	require.NotNil(t, clone)
	assert.NotSame(t, orig, clone)
	assert.NotEqual(t, orig.GUID, clone.GUID)
	assert.Equal(t, orig.Name, clone.Name)
	assert.Equal(t, orig.DiffuseColour, clone.DiffuseColour)
	assert.Equal(t, orig.DiffuseMapName, clone.DiffuseMapName)
	assert.Empty(t, clone.AssetPath)
	assert.Zero(t, clone.Generation)
}

func TestNewMaterialKeepsConfiguredGUID(t *testing.T) {
	id := uuid.New()
	m := NewMaterial(&MaterialConfig{GUID: id.String(), Name: "Glass"})
	assert.Equal(t, id, m.GUID)
	assert.Equal(t, id.String(), m.Config().GUID)

	fresh := NewMaterial(&MaterialConfig{Name: "Glass"})
	assert.NotEqual(t, uuid.Nil, fresh.GUID)
}
