package resources

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/anima-tools/engine/math"
)

/** @brief The name of the default material. */
const DefaultMaterialName string = "default"

/** @brief The file extension of material assets. */
const MaterialExtension string = ".amt"

/**
 * @brief Material configuration typically loaded from
 * a file or created in code to load a material from.
 */
type MaterialConfig struct {
	/** @brief The asset GUID. Empty for materials that were never persisted. */
	GUID string
	/** @brief The name of the material. */
	Name string
	/** @brief The material type. */
	ShaderName string
	/** @brief Indicates if the material should be automatically released when no references to it remain. */
	AutoRelease bool
	/** @brief The diffuse colour of the material. */
	DiffuseColour math.Vec4
	/** @brief The shininess of the material. */
	Shininess float32
	/** @brief The diffuse map name. */
	DiffuseMapName string
	/** @brief The specular map name. */
	SpecularMapName string
	/** @brief The normal map name. */
	NormalMapName string
}

/**
 * @brief A material asset. Materials are compared by identity:
 * two materials with equal properties are still different assets.
 */
type Material struct {
	/** @brief Stable asset identifier, written next to the properties on disk. */
	GUID uuid.UUID
	/** @brief The material generation. Incremented every time the material is changed. */
	Generation uint32
	/** @brief The material name. */
	Name string
	/** @brief The path the asset is stored at. Empty until persisted. */
	AssetPath string
	ShaderName  string
	AutoRelease bool
	/** @brief The diffuse colour. */
	DiffuseColour math.Vec4
	/** @brief The material shininess, determines how concentrated the specular lighting is. */
	Shininess       float32
	DiffuseMapName  string
	SpecularMapName string
	NormalMapName   string
}

// NewMaterial builds an in-memory material from a config. A config without
// a GUID gets a fresh one.
func NewMaterial(cfg *MaterialConfig) *Material {
	id, err := uuid.Parse(cfg.GUID)
	if err != nil {
		id = uuid.New()
	}
	return &Material{
		GUID:            id,
		Name:            cfg.Name,
		ShaderName:      cfg.ShaderName,
		AutoRelease:     cfg.AutoRelease,
		DiffuseColour:   cfg.DiffuseColour,
		Shininess:       cfg.Shininess,
		DiffuseMapName:  cfg.DiffuseMapName,
		SpecularMapName: cfg.SpecularMapName,
		NormalMapName:   cfg.NormalMapName,
	}
}

// Clone duplicates the properties of m into a new, unsaved asset.
// The clone has its own GUID and no asset path.
func (m *Material) Clone() *Material {
	c := *m
	c.GUID = uuid.New()
	c.Generation = 0
	c.AssetPath = ""
	return &c
}

// Config returns the serializable properties of the material.
func (m *Material) Config() *MaterialConfig {
	return &MaterialConfig{
		GUID:            m.GUID.String(),
		Name:            m.Name,
		ShaderName:      m.ShaderName,
		AutoRelease:     m.AutoRelease,
		DiffuseColour:   m.DiffuseColour,
		Shininess:       m.Shininess,
		DiffuseMapName:  m.DiffuseMapName,
		SpecularMapName: m.SpecularMapName,
		NormalMapName:   m.NormalMapName,
	}
}

func (m *Material) String() string {
	if m == nil {
		return "<nil>"
	}
	return m.Name
}
