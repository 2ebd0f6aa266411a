// Package cli provides Cobra command definitions for mbl.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mirrorbytes/launcher/internal/config"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a config file with a first game entry",
		Long: `Write a starter config to ~/.config/mbl/config.toml (or the --config
path) and interactively add the first game to the catalog.

With --no-tui a config with defaults and no games is written; edit it
by hand afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ConfigPath
			if path == "" {
				homeDir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				path = filepath.Join(homeDir, ".config", "mbl", "config.toml")
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}

			cfg := config.DefaultConfig()
			if !IsNoTUI() {
				game, err := promptGame()
				if err != nil {
					return err
				}
				if game != nil {
					cfg.Games = append(cfg.Games, *game)
				}
			}

			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.Write(path, cfg); err != nil {
				return err
			}
			fmt.Printf("Config written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")

	return cmd
}

// promptGame collects the first catalog entry. Returns nil when the
// user skips it.
func promptGame() (*config.GameConfig, error) {
	var (
		add  = true
		game config.GameConfig
	)

	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Add a game now?").
				Value(&add),
		),
	).Run(); err != nil {
		return nil, err
	}
	if !add {
		return nil, nil
	}

	if err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Game ID (short identifier, e.g. illusion)").
				Value(&game.ID),
			huh.NewInput().
				Title("Display name").
				Value(&game.Name),
			huh.NewInput().
				Title("GitHub owner").
				Value(&game.Owner),
			huh.NewInput().
				Title("GitHub repository").
				Value(&game.Repo),
			huh.NewInput().
				Title("Install directory").
				Value(&game.InstallDir),
			huh.NewInput().
				Title("Entry executable (e.g. Game.exe)").
				Value(&game.ExeName),
			huh.NewInput().
				Title("Save directory (optional, enables backups)").
				Value(&game.SaveDir),
		),
	).Run(); err != nil {
		return nil, err
	}

	return &game, nil
}
