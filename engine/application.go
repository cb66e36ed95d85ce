package engine

import (
	"github.com/spaghettifunk/anima-tools/engine/config"
	"github.com/spaghettifunk/anima-tools/engine/core"
)

type ApplicationConfig struct {
	// The application name used in log output.
	Name     string
	LogLevel core.LogLevel
	// Project directory holding the Assets/ tree.
	AssetsDir string
	// Keep the asset index in sync with external file changes.
	WatchAssets bool
	// Number of undo groups kept in memory.
	MaxUndoGroups int
	Settings      *config.Config
}

// NewApplicationConfig derives the application settings from a loaded config.
func NewApplicationConfig(name string, cfg *config.Config) *ApplicationConfig {
	return &ApplicationConfig{
		Name:          name,
		LogLevel:      cfg.LogLevel(),
		AssetsDir:     cfg.Paths.AssetsDir,
		WatchAssets:   cfg.Paths.WatchAssets,
		MaxUndoGroups: cfg.History.MaxGroups,
		Settings:      cfg,
	}
}
