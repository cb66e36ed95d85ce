package config

import (
	"fmt"
	"path"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	if c.Paths.AssetsDir, err = expandPath(c.Paths.AssetsDir); err != nil {
		return fmt.Errorf("paths.assets_dir: %w", err)
	}
	c.normalizeRipper()
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}

// normalizeRipper turns the folder path into a clean, slash separated asset
// path. The name suffix is kept verbatim: leading spaces are significant.
func (c *Config) normalizeRipper() {
	folder := strings.TrimSpace(strings.ReplaceAll(c.Ripper.FolderPath, "\\", "/"))
	if folder != "" {
		folder = path.Clean(folder)
	}
	c.Ripper.FolderPath = folder
	c.Ripper.FolderLayout = strings.ToLower(strings.TrimSpace(c.Ripper.FolderLayout))
	if c.Ripper.FolderLayout == "" {
		c.Ripper.FolderLayout = defaultFolderLayout
	}
}
