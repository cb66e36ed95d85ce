package config

const (
	defaultAssetsDir    = "."
	defaultFolderPath   = "Assets/Temp"
	defaultNameSuffix   = " (Copy)"
	defaultFolderLayout = LayoutPerRoot
	defaultMaxGroups    = 64
	defaultLogLevel     = "info"
)

// Folder layouts accepted by ripper.folder_layout.
const (
	LayoutPerRoot = "per_root"
	LayoutFlat    = "flat"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			AssetsDir: defaultAssetsDir,
		},
		Ripper: Ripper{
			FolderPath:   defaultFolderPath,
			NameSuffix:   defaultNameSuffix,
			FolderLayout: defaultFolderLayout,
		},
		History: History{
			MaxGroups: defaultMaxGroups,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}
