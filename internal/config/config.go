// Package config provides configuration management for mbl.
//
// The configuration is stored in TOML format and supports validation
// and default values for all fields.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config is the top-level configuration struct for mbl.
// It contains the launcher settings and the game catalog.
type Config struct {
	Launcher LauncherConfig `toml:"launcher"`
	GitHub   GitHubConfig   `toml:"github"`
	Games    []GameConfig   `toml:"games"`
}

// LauncherConfig contains launcher-wide settings.
type LauncherConfig struct {
	// CheckSchedule is the cron expression for periodic update checks
	// (default: "@hourly").
	CheckSchedule string `toml:"check_schedule"`

	// BackupsDir is where save-game backups are stored.
	BackupsDir string `toml:"backups_dir"`

	// MaxBackups is how many automatic backups to keep per game.
	// Manual backups are never rotated away. 0 disables rotation.
	MaxBackups int `toml:"max_backups"`

	// NoTUI disables interactive terminal UI and falls back to plain output.
	NoTUI bool `toml:"no_tui"`

	// Language is the UI language tag (e.g., "en", "de").
	Language string `toml:"language"`

	// SelfUpdateRepo is the owner/repo pair the launcher updates itself
	// from. Empty disables self-update.
	SelfUpdateRepo string `toml:"self_update_repo"`
}

// GitHubConfig contains release API settings.
type GitHubConfig struct {
	// Token is an optional API token for higher rate limits.
	// Overridden by MBL_GITHUB_TOKEN or GITHUB_TOKEN.
	Token string `toml:"token"`
}

// GameConfig describes one managed game installation.
type GameConfig struct {
	// ID is the short identifier used on the command line (e.g., "illusion").
	ID string `toml:"id"`

	// Name is the display name.
	Name string `toml:"name"`

	// Owner is the GitHub account that publishes releases.
	Owner string `toml:"owner"`

	// Repo is the release repository name.
	Repo string `toml:"repo"`

	// InstallDir is the local install directory.
	InstallDir string `toml:"install_dir"`

	// ExeName is the entry-point executable inside InstallDir.
	ExeName string `toml:"exe_name"`

	// SaveDir is the save-game directory, used for backups.
	// Empty disables backups for this game.
	SaveDir string `toml:"save_dir"`
}

// Slug returns the owner/repo pair.
func (g *GameConfig) Slug() string {
	return g.Owner + "/" + g.Repo
}

// DisplayName returns Name, falling back to the ID.
func (g *GameConfig) DisplayName() string {
	if g.Name != "" {
		return g.Name
	}
	return g.ID
}

// DefaultConfig returns a Config with all default values set.
// The game catalog starts empty; users add [[games]] entries themselves.
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Launcher: LauncherConfig{
			CheckSchedule:  "@hourly",
			BackupsDir:     filepath.Join(homeDir, ".local", "share", "mbl", "backups"),
			MaxBackups:     10,
			NoTUI:          false,
			Language:       "en",
			SelfUpdateRepo: "mirrorbytes/launcher",
		},
	}
}

// Game looks up a catalog entry by ID.
func (c *Config) Game(id string) (*GameConfig, bool) {
	for i := range c.Games {
		if c.Games[i].ID == id {
			return &c.Games[i], true
		}
	}
	return nil, false
}

// Validate checks the configuration for valid values.
// Returns a nil error if the config is valid, or an error describing the problem.
func (c *Config) Validate() error {
	// Validate Launcher section
	if c.Launcher.CheckSchedule == "" {
		return fmt.Errorf("launcher.check_schedule cannot be empty")
	}
	if c.Launcher.BackupsDir == "" {
		return fmt.Errorf("launcher.backups_dir cannot be empty")
	}
	if c.Launcher.MaxBackups < 0 {
		return fmt.Errorf("launcher.max_backups must be >= 0; got %d", c.Launcher.MaxBackups)
	}
	if c.Launcher.Language == "" {
		return fmt.Errorf("launcher.language cannot be empty")
	}
	if c.Launcher.SelfUpdateRepo != "" {
		if owner, repo, ok := strings.Cut(c.Launcher.SelfUpdateRepo, "/"); !ok || owner == "" || repo == "" {
			return fmt.Errorf("launcher.self_update_repo must be owner/repo; got %q", c.Launcher.SelfUpdateRepo)
		}
	}

	// Validate the game catalog
	seen := map[string]bool{}
	for i := range c.Games {
		g := &c.Games[i]
		where := fmt.Sprintf("games[%d]", i)
		if g.ID == "" {
			return fmt.Errorf("%s.id cannot be empty", where)
		}
		where = fmt.Sprintf("games[%q]", g.ID)
		if seen[g.ID] {
			return fmt.Errorf("duplicate game id %q", g.ID)
		}
		seen[g.ID] = true

		if strings.ContainsAny(g.ID, "/\\ ") {
			return fmt.Errorf("%s.id cannot contain spaces or path separators", where)
		}
		if g.Owner == "" {
			return fmt.Errorf("%s.owner cannot be empty", where)
		}
		if g.Repo == "" {
			return fmt.Errorf("%s.repo cannot be empty", where)
		}
		if g.InstallDir == "" {
			return fmt.Errorf("%s.install_dir cannot be empty", where)
		}
		if g.ExeName == "" {
			return fmt.Errorf("%s.exe_name cannot be empty", where)
		}
		if strings.ContainsAny(g.ExeName, "/\\") {
			return fmt.Errorf("%s.exe_name must be a bare file name; got %q", where, g.ExeName)
		}
	}

	return nil
}
