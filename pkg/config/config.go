// Package config provides the YAML configuration for the fskit command
// line tool: logging, output, and default creation permissions. The
// library packages never read it; it exists for the CLI shell only.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/glorpus-work/fskit/pkg/errors"
	"github.com/glorpus-work/fskit/pkg/permissions"
)

// Config represents the fskit CLI configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general tool settings.
type Settings struct {
	// LogLevel is one of panic, fatal, error, warn, info, debug, trace.
	LogLevel string `yaml:"log_level"`

	// ColorOutput controls colored log output.
	ColorOutput bool `yaml:"color_output"`

	// FileMode is the default permission set for created files, as a
	// three-digit octal integer (e.g. 644).
	FileMode int `yaml:"file_mode"`

	// DirMode is the default permission set for created directories.
	DirMode int `yaml:"dir_mode"`
}

// YAMLIndent is the number of spaces to use for YAML indentation.
const YAMLIndent = 2

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			LogLevel:    "info",
			ColorOutput: true,
			FileMode:    644,
			DirMode:     755,
		},
	}
}

// GetDefaultConfigPath returns the platform default location of the
// fskit config file.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(errors.FromOS(err), "failed to determine user config directory")
	}
	return filepath.Join(configDir, "fskit", "config.yaml"), nil
}

// LoadConfig loads configuration from a file. A missing file yields the
// defaults rather than an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config file path cannot be empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(errors.FromOS(err), "invalid config file path %s", path)
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(errors.FromOS(err), "failed to open config file %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(errors.FromOS(err), "failed to read config data")
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration values for consistency.
func (c *Config) Validate() error {
	if _, err := permissions.FromOctal(c.Settings.FileMode); err != nil {
		return errors.Wrapf(err, "invalid file_mode %d", c.Settings.FileMode)
	}
	if _, err := permissions.FromOctal(c.Settings.DirMode); err != nil {
		return errors.Wrapf(err, "invalid dir_mode %d", c.Settings.DirMode)
	}
	return nil
}

// SaveConfig saves configuration to a file, replacing it atomically.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return fmt.Errorf("config file path cannot be empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(errors.FromOS(err), "invalid config file path %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(absPath), permissions.DirModeDefault); err != nil {
		return errors.Wrap(errors.FromOS(err), "failed to create config directory")
	}

	tempPath := absPath + ".tmp"
	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, permissions.FileModeDefault)
	if err != nil {
		return errors.Wrap(errors.FromOS(err), "failed to create config file")
	}

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(YAMLIndent)
	if err := encoder.Encode(c); err != nil {
		_ = file.Close()
		_ = os.Remove(tempPath)
		return errors.Wrap(err, "failed to encode config")
	}
	_ = encoder.Close()
	_ = file.Close()

	if err := os.Rename(tempPath, absPath); err != nil {
		_ = os.Remove(tempPath)
		return errors.Wrap(errors.FromOS(err), "failed to replace config file")
	}
	return nil
}
