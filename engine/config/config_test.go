package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/anima-tools/engine/config"
	"github.com/spaghettifunk/anima-tools/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "absent.toml")

	cfg, resolved, exists, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, p, resolved)
	assert.False(t, exists)
	assert.Equal(t, "Assets/Temp", cfg.Ripper.FolderPath)
	assert.Equal(t, " (Copy)", cfg.Ripper.NameSuffix)
	assert.Equal(t, config.LayoutPerRoot, cfg.Ripper.FolderLayout)
	assert.Equal(t, 64, cfg.History.MaxGroups)
	assert.Equal(t, core.InfoLevel, cfg.LogLevel())
	assert.True(t, filepath.IsAbs(cfg.Paths.AssetsDir))
}

func TestLoadOverridesAndNormalizes(t *testing.T) {
	assetsDir := t.TempDir()
	p := writeConfig(t, `
[paths]
assets_dir = "`+filepath.ToSlash(assetsDir)+`"
watch_assets = true

[ripper]
folder_path = "Assets\\Ripped\\"
name_suffix = "_rip"
folder_layout = " FLAT "

[history]
max_groups = 8

[logging]
level = "DEBUG"
`)

	cfg, _, exists, err := config.Load(p)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, assetsDir, cfg.Paths.AssetsDir)
	assert.True(t, cfg.Paths.WatchAssets)
	assert.Equal(t, "Assets/Ripped", cfg.Ripper.FolderPath)
	assert.Equal(t, "_rip", cfg.Ripper.NameSuffix)
	assert.Equal(t, config.LayoutFlat, cfg.Ripper.FolderLayout)
	assert.Equal(t, 8, cfg.History.MaxGroups)
	assert.Equal(t, core.DebugLevel, cfg.LogLevel())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"layout":       "[ripper]\nfolder_layout = \"nested\"\n",
		"absolute":     "[ripper]\nfolder_path = \"/tmp/out\"\n",
		"escape":       "[ripper]\nfolder_path = \"../outside\"\n",
		"empty folder": "[ripper]\nfolder_path = \"  \"\n",
		"history":      "[history]\nmax_groups = 0\n",
		"level":        "[logging]\nlevel = \"loud\"\n",
		"unknown key":  "[ripper]\nfolder = \"Assets\"\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, _, err := config.Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestSampleConfigParsesAndValidates(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nested", "anima-tools.toml")
	require.NoError(t, config.CreateSample(p))

	raw, err := os.ReadFile(p)
	require.NoError(t, err)
	var decoded config.Config
	require.NoError(t, toml.Unmarshal(raw, &decoded))

	cfg, _, exists, err := config.Load(p)
	require.NoError(t, err)
	assert.True(t, exists)
	def := config.Default()
	assert.Equal(t, def.Ripper, cfg.Ripper)
	assert.Equal(t, def.History, cfg.History)
}

func TestEncodeRoundTrips(t *testing.T) {
	def := config.Default()
	out, err := def.Encode()
	require.NoError(t, err)
	assert.Contains(t, out, "folder_layout")

	var back config.Config
	require.NoError(t, toml.Unmarshal([]byte(out), &back))
	assert.Equal(t, def, back)
}
