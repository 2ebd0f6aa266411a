// Package cli provides Cobra command definitions for mbl.
package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mirrorbytes/launcher/internal/backup"
	"github.com/mirrorbytes/launcher/internal/config"
	"github.com/mirrorbytes/launcher/internal/i18n"
	"github.com/mirrorbytes/launcher/internal/tui"
	"github.com/mirrorbytes/launcher/internal/update"
)

// NewUpdateCommand creates the update command.
func NewUpdateCommand() *cobra.Command {
	var (
		yes      bool
		noBackup bool
	)

	cmd := &cobra.Command{
		Use:   "update <game>",
		Short: "Download and install the latest version of a game",
		Long: `Check for a newer release and install it.

The previous installation is kept aside during the install and restored
automatically if anything fails, so a broken download never leaves a
half-updated game behind. When the game has a save directory configured,
an automatic save backup is taken first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd.Context(), args[0], yes, noBackup)
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip confirmation prompt")
	cmd.Flags().BoolVar(&noBackup, "no-backup", false, "skip the automatic save backup")

	return cmd
}

func runUpdate(ctx context.Context, id string, yes, noBackup bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	game, err := findGame(cfg, id)
	if err != nil {
		return err
	}

	t := translator(cfg)
	pipeline := newPipeline(cfg, game)

	fmt.Println(t.T("check.checking", game.DisplayName()))
	result, err := pipeline.Check(ctx)
	if err != nil {
		return err
	}
	if !result.Available {
		fmt.Println(t.T("check.up_to_date", game.DisplayName(), result.InstalledVersion))
		return nil
	}

	if !yes {
		ok, err := confirmUpdate(cfg, t.T("update.confirm", game.DisplayName(), result.Version))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println(t.T("update.canceled"))
			return nil
		}
	}

	if !noBackup && game.SaveDir != "" && result.InstalledVersion != "" {
		manager := backup.NewManager(cfg.Launcher.BackupsDir, cfg.Launcher.MaxBackups)
		name := fmt.Sprintf("before %s", result.Version)
		if _, err := manager.Create(game, name, backup.KindAuto); err != nil {
			return err
		}
	}

	if interactive(cfg) {
		title := fmt.Sprintf("%s %s", game.DisplayName(), result.Version)
		err = tui.RunDownload(ctx, title, func(ctx context.Context, onStage func(update.Stage), onProgress update.ProgressFunc) error {
			return pipeline.Apply(ctx, result.Version, result.Asset, update.ApplyOptions{
				OnStage:    onStage,
				OnProgress: onProgress,
			})
		})
	} else {
		err = applyPlain(ctx, t, pipeline, result)
	}
	if err != nil {
		return err
	}

	fmt.Println(t.T("update.done", game.DisplayName(), result.Version))
	return nil
}

// applyPlain runs the update without a TUI, printing stage transitions.
func applyPlain(ctx context.Context, t *i18n.Translator, pipeline *update.Pipeline, result *update.CheckResult) error {
	lastPercent := -1
	opts := update.ApplyOptions{
		OnStage: func(s update.Stage) {
			switch s {
			case update.StageDownloading:
				fmt.Println(t.T("update.downloading", result.Asset.Name))
			case update.StageExtracting:
				fmt.Println(t.T("update.extracting"))
			case update.StageInstalling:
				fmt.Println(t.T("update.installing"))
			}
		},
		OnProgress: func(percent int) {
			// Every tenth percent, plus the final 100.
			if percent/10 > lastPercent/10 || percent == 100 {
				fmt.Printf("  %d%%\n", percent)
			}
			lastPercent = percent
		},
	}
	return pipeline.Apply(ctx, result.Version, result.Asset, opts)
}

func confirmUpdate(cfg *config.Config, prompt string) (bool, error) {
	if !interactive(cfg) {
		// Plain mode never prompts.
		return false, fmt.Errorf("confirmation required; re-run with --yes")
	}

	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Value(&ok),
		),
	).Run()
	if err != nil {
		return false, err
	}
	return ok, nil
}
