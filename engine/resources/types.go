package resources

type ResourceType int

/** @brief Pre-defined resource types. */
const (
	/** @brief Unknown resource type. Files with this type are not indexed. */
	ResourceTypeNone ResourceType = iota
	/** @brief Material resource type (.amt). */
	ResourceTypeMaterial
	/** @brief Scene document resource type (.scene.toml). */
	ResourceTypeScene
	/** @brief Prefab definition resource type (.prefab.toml). */
	ResourceTypePrefab
)

func (t ResourceType) String() string {
	switch t {
	case ResourceTypeMaterial:
		return "material"
	case ResourceTypeScene:
		return "scene"
	case ResourceTypePrefab:
		return "prefab"
	default:
		return "none"
	}
}

/**
 * @brief A generic structure for a resource. All resource loaders
 * load data into these.
 */
type Resource struct {
	/** @brief The resource type. */
	Type ResourceType
	/** @brief The name of the resource. */
	Name string
	/** @brief The full file path of the resource. */
	FullPath string
	/** @brief The resource data. */
	Data interface{}
}
