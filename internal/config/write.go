// Package config provides configuration management for mbl.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	apperrors "github.com/mirrorbytes/launcher/internal/errors"
)

// Write writes the config to a file in TOML format.
func Write(path string, cfg *Config) error {
	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return &apperrors.ConfigError{Path: path, Err: err}
	}

	var buf strings.Builder
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return &apperrors.ConfigError{Path: path, Err: err}
	}

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return &apperrors.ConfigError{Path: path, Err: err}
	}

	return nil
}
