package loaders

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/spaghettifunk/anima-tools/engine/math"
	"github.com/spaghettifunk/anima-tools/engine/resources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const brickAMT = `# anima material file
guid = 0f8fad5b-d9cb-469f-a165-70867728950e
name = Brick
shader = Builtin.MaterialShader
diffuse_colour = 0.8 0.5 0.25 1
shininess = 16
diffuse_map_name = brick_diffuse
autorelease = true
`

func TestParseMaterial(t *testing.T) {
	cfg, err := ParseMaterial(strings.NewReader(brickAMT))
	require.NoError(t, err)
	assert.Equal(t, "0f8fad5b-d9cb-469f-a165-70867728950e", cfg.GUID)
	assert.Equal(t, "Brick", cfg.Name)
	assert.Equal(t, "Builtin.MaterialShader", cfg.ShaderName)
	assert.Equal(t, math.NewVec4(0.8, 0.5, 0.25, 1), cfg.DiffuseColour)
	assert.Equal(t, float32(16), cfg.Shininess)
	assert.Equal(t, "brick_diffuse", cfg.DiffuseMapName)
	assert.True(t, cfg.AutoRelease)
}

func TestParseMaterialRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"missing name":     "shader = s\n",
		"missing shader":   "name = n\n",
		"bad colour count": "name = n\nshader = s\ndiffuse_colour = 1 1 1\n",
		"colour range":     "name = n\nshader = s\ndiffuse_colour = 2 1 1 1\n",
		"bad shininess":    "name = n\nshader = s\nshininess = shiny\n",
		"negative shine":   "name = n\nshader = s\nshininess = -1\n",
		"bad guid":         "guid = nope\nname = n\nshader = s\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseMaterial(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func TestWriteMaterialIsReadBack(t *testing.T) {
	cfg := &resources.MaterialConfig{
		GUID:            uuid.NewString(),
		Name:            "Brick (Copy)",
		ShaderName:      "Builtin.MaterialShader",
		DiffuseColour:   math.NewVec4(0.1, 0.2, 0.3, 0.4),
		Shininess:       8.5,
		SpecularMapName: "brick_spec",
		NormalMapName:   "brick_norm",
	}
	var buf bytes.Buffer
	require.NoError(t, WriteMaterial(&buf, cfg))

	got, err := ParseMaterial(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestMaterialLoaderLoadsFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "Materials", "Brick.amt")
	cfg, err := ParseMaterial(strings.NewReader(brickAMT))
	require.NoError(t, err)
	require.NoError(t, SaveMaterialFile(p, cfg))

	ml := &MaterialLoader{}
	res, err := ml.Load(p, resources.ResourceTypeMaterial, nil)
	require.NoError(t, err)
	assert.Equal(t, resources.ResourceTypeMaterial, res.Type)
	assert.Equal(t, "Brick", res.Name)
	assert.Equal(t, cfg, res.Data)

	_, err = ml.Load(p, resources.ResourceTypeScene, nil)
	assert.Error(t, err)
}
