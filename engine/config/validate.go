package config

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/spaghettifunk/anima-tools/engine/core"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateRipper(); err != nil {
		return err
	}
	if c.History.MaxGroups < 1 {
		return errors.New("history.max_groups must be at least 1")
	}
	if _, err := core.ParseLogLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.AssetsDir) == "" {
		return errors.New("paths.assets_dir must be set")
	}
	return nil
}

func (c *Config) validateRipper() error {
	folder := c.Ripper.FolderPath
	if folder == "" {
		return errors.New("ripper.folder_path must be set")
	}
	if path.IsAbs(folder) {
		return fmt.Errorf("ripper.folder_path %q must be relative to the assets directory", folder)
	}
	if folder == ".." || strings.HasPrefix(folder, "../") {
		return fmt.Errorf("ripper.folder_path %q escapes the assets directory", folder)
	}
	switch c.Ripper.FolderLayout {
	case LayoutPerRoot, LayoutFlat:
	default:
		return fmt.Errorf("ripper.folder_layout must be %q or %q, got %q", LayoutPerRoot, LayoutFlat, c.Ripper.FolderLayout)
	}
	return nil
}
