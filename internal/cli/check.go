// Package cli provides Cobra command definitions for mbl.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mirrorbytes/launcher/internal/config"
	"github.com/mirrorbytes/launcher/internal/i18n"
	"github.com/mirrorbytes/launcher/internal/update"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "check [game]",
		Short: "Check whether a game has an update",
		Long: `Check the release repository of a game for a newer version.

The installed version is read from VERSION.txt in the install directory;
a missing marker means the game is not installed yet and any release
counts as an update.

Examples:
  mbl check illusion     # check one game
  mbl check --all        # check every configured game`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if all {
				return runCheckAll(cmd.Context(), cfg)
			}
			if len(args) != 1 {
				return fmt.Errorf("specify a game ID or --all")
			}
			return runCheck(cmd.Context(), cfg, args[0])
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "check every configured game")

	return cmd
}

func runCheck(ctx context.Context, cfg *config.Config, id string) error {
	game, err := findGame(cfg, id)
	if err != nil {
		return err
	}

	t := translator(cfg)
	fmt.Println(t.T("check.checking", game.DisplayName()))

	result, err := newPipeline(cfg, game).Check(ctx)
	if err != nil {
		return err
	}
	printCheckResult(t, game, result)
	return nil
}

func runCheckAll(ctx context.Context, cfg *config.Config) error {
	t := translator(cfg)
	var firstErr error
	for i := range cfg.Games {
		game := &cfg.Games[i]
		result, err := newPipeline(cfg, game).Check(ctx)
		if err != nil {
			fmt.Printf("%s: %v\n", game.DisplayName(), err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		printCheckResult(t, game, result)
	}
	return firstErr
}

func printCheckResult(t *i18n.Translator, game *config.GameConfig, result *update.CheckResult) {
	switch {
	case result.Available && result.InstalledVersion == "":
		fmt.Println(t.T("check.not_installed", game.DisplayName(), result.Version))
	case result.Available:
		fmt.Println(t.T("check.available", game.DisplayName(), result.InstalledVersion, result.Version))
	default:
		fmt.Println(t.T("check.up_to_date", game.DisplayName(), result.InstalledVersion))
	}
}
