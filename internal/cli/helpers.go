package cli

import (
	"fmt"

	"github.com/glorpus-work/fskit/pkg/config"
	"github.com/glorpus-work/fskit/pkg/logger"
	"github.com/glorpus-work/fskit/pkg/permissions"
)

// These variables will be set by the main package
var (
	ConfigPath *string
	Verbose    *bool
	NoColor    *bool
)

// loadConfig loads the configuration and initializes logging from it.
// This is a bridge function that the CLI commands can use.
func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	configPath := ""
	if ConfigPath != nil {
		configPath = *ConfigPath
	}

	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
	} else {
		defaultPath, pathErr := config.GetDefaultConfigPath()
		if pathErr != nil {
			return nil, fmt.Errorf("failed to get default config path: %w", pathErr)
		}
		cfg, err = config.LoadConfig(defaultPath)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with CLI flags if provided
	if NoColor != nil && *NoColor {
		cfg.Settings.ColorOutput = false
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger.InitLogger(cfg.Settings.LogLevel, !cfg.Settings.ColorOutput)

	return cfg, nil
}

// configFileMode returns the default file permission set from the config.
func configFileMode(cfg *config.Config) permissions.Set {
	set, err := permissions.FromOctal(cfg.Settings.FileMode)
	if err != nil {
		return permissions.FromFileMode(permissions.FileModeDefault)
	}
	return set
}

// configDirMode returns the default directory permission set from the config.
func configDirMode(cfg *config.Config) permissions.Set {
	set, err := permissions.FromOctal(cfg.Settings.DirMode)
	if err != nil {
		return permissions.FromFileMode(permissions.DirModeDefault)
	}
	return set
}
