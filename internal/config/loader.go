// Package config provides configuration management for mbl.
//
// This file contains config loading functionality including:
// - XDG config path detection
// - TOML file parsing
// - Environment variable overrides
// - Validation
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	apperrors "github.com/mirrorbytes/launcher/internal/errors"
)

// DetectConfigPath searches for a config file using XDG standard paths.
//
// Search order:
// 1. ~/.config/mbl/config.toml
//
// Returns empty string if no config file is found (caller should use defaults).
func DetectConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	configPath := filepath.Join(homeDir, ".config", "mbl", "config.toml")
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	return ""
}

// Load loads a config from the specified path.
// If the file doesn't exist, returns an error.
// After loading, applies environment variable overrides and validates.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &apperrors.ConfigError{Path: path, Err: apperrors.ErrNotFound}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &apperrors.ConfigError{Path: path, Err: err}
	}

	// Start with defaults
	cfg := DefaultConfig()

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &apperrors.ConfigError{Path: path, Err: err}
	}

	applyEnvOverrides(cfg)
	expandPaths(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, &apperrors.ConfigError{Path: path, Err: err}
	}

	return cfg, nil
}

// LoadWithDefaults attempts to load a config from XDG standard paths.
// If no config file is found, returns a config with all default values.
// If a config file is found but fails to load/validate, returns an error.
func LoadWithDefaults() (*Config, error) {
	configPath := DetectConfigPath()
	if configPath == "" {
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		expandPaths(cfg)
		return cfg, nil
	}

	return Load(configPath)
}

// applyEnvOverrides applies environment variable overrides to the config.
//
// The token accepts MBL_GITHUB_TOKEN first, then the conventional
// GITHUB_TOKEN; the remaining overrides follow the MBL_<SECTION>_<FIELD>
// pattern.
func applyEnvOverrides(c *Config) {
	applyString := func(key string, target *string) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			*target = val
		}
	}

	applyBool := func(key string, target *bool) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			switch strings.ToLower(val) {
			case "true", "1", "yes", "on":
				*target = true
			case "false", "0", "no", "off":
				*target = false
			}
		}
	}

	applyInt := func(key string, target *int) {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			var i int
			if _, err := fmt.Sscanf(val, "%d", &i); err == nil {
				*target = i
			}
		}
	}

	applyString("GITHUB_TOKEN", &c.GitHub.Token)
	applyString("MBL_GITHUB_TOKEN", &c.GitHub.Token)

	applyString("MBL_LAUNCHER_CHECK_SCHEDULE", &c.Launcher.CheckSchedule)
	applyString("MBL_LAUNCHER_BACKUPS_DIR", &c.Launcher.BackupsDir)
	applyInt("MBL_LAUNCHER_MAX_BACKUPS", &c.Launcher.MaxBackups)
	applyBool("MBL_LAUNCHER_NO_TUI", &c.Launcher.NoTUI)
	applyString("MBL_LAUNCHER_LANGUAGE", &c.Launcher.Language)
	applyString("MBL_LAUNCHER_SELF_UPDATE_REPO", &c.Launcher.SelfUpdateRepo)
}

// expandPaths expands ~ to the home directory in all configured paths.
func expandPaths(c *Config) {
	c.Launcher.BackupsDir = expandHome(c.Launcher.BackupsDir)
	for i := range c.Games {
		c.Games[i].InstallDir = expandHome(c.Games[i].InstallDir)
		c.Games[i].SaveDir = expandHome(c.Games[i].SaveDir)
	}
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, strings.TrimPrefix(path, "~/"))
}
