// Package cli provides global state and utilities for CLI commands.
package cli

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/mirrorbytes/launcher/internal/config"
	"github.com/mirrorbytes/launcher/internal/github"
	"github.com/mirrorbytes/launcher/internal/i18n"
	"github.com/mirrorbytes/launcher/internal/update"
)

var (
	// NoTUI indicates that TUI/interactive mode should be disabled.
	// This is set by the global --no-tui flag.
	NoTUI bool

	// ConfigPath overrides config file detection.
	// This is set by the global --config flag.
	ConfigPath string

	// Version is the running build's version, set from main.
	Version = "dev"

	// noTUIMutex protects NoTUI for concurrent access.
	noTUIMutex sync.RWMutex
)

// AddGlobalFlags adds global flags to a command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&NoTUI, "no-tui", false,
		"disable TUI/interactive mode; use plain text output")
	cmd.PersistentFlags().StringVar(&ConfigPath, "config", "",
		"config file path (default ~/.config/mbl/config.toml)")
}

// IsNoTUI returns true if TUI mode is disabled.
func IsNoTUI() bool {
	noTUIMutex.RLock()
	defer noTUIMutex.RUnlock()
	return NoTUI
}

// loadConfig loads the configuration, honoring the global --config flag.
func loadConfig() (*config.Config, error) {
	if ConfigPath != "" {
		return config.Load(ConfigPath)
	}
	return config.LoadWithDefaults()
}

// findGame resolves a game ID against the catalog.
func findGame(cfg *config.Config, id string) (*config.GameConfig, error) {
	game, ok := cfg.Game(id)
	if !ok {
		return nil, fmt.Errorf("unknown game %q; add a [[games]] entry to the config", id)
	}
	return game, nil
}

// newClient creates a release client for a game using the configured token.
func newClient(cfg *config.Config, game *config.GameConfig) *github.Client {
	return github.NewClient(game.Owner, game.Repo, cfg.GitHub.Token)
}

// newPipeline creates the update pipeline for a game.
func newPipeline(cfg *config.Config, game *config.GameConfig) *update.Pipeline {
	return update.NewPipeline(newClient(cfg, game), game.InstallDir, game.ExeName)
}

// translator returns the message translator for the configured language.
func translator(cfg *config.Config) *i18n.Translator {
	return i18n.New(cfg.Launcher.Language)
}

// interactive reports whether TUI output should be used.
func interactive(cfg *config.Config) bool {
	return !IsNoTUI() && !cfg.Launcher.NoTUI
}
