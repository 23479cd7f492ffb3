package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Settings.LogLevel)
	assert.True(t, cfg.Settings.ColorOutput)
	assert.Equal(t, 644, cfg.Settings.FileMode)
	assert.Equal(t, 755, cfg.Settings.DirMode)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromReader(t *testing.T) {
	yaml := `
settings:
  log_level: debug
  file_mode: 600
`
	cfg, err := LoadConfigFromReader(strings.NewReader(yaml))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Settings.LogLevel)
	assert.Equal(t, 600, cfg.Settings.FileMode)
	// Unset fields keep defaults.
	assert.Equal(t, 755, cfg.Settings.DirMode)
}

func TestLoadConfigFromReader_InvalidMode(t *testing.T) {
	_, err := LoadConfigFromReader(strings.NewReader("settings:\n  file_mode: 999\n"))
	assert.Error(t, err)
}

func TestSaveAndReloadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Settings.LogLevel = "warn"
	cfg.Settings.DirMode = 700
	require.NoError(t, cfg.SaveConfig(path))

	// No stray temp file left behind.
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
