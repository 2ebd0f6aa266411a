// Package cli provides Cobra command definitions for mbl.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/mirrorbytes/launcher/internal/errors"
)

// NewRollbackCommand creates the rollback command.
func NewRollbackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rollback <game>",
		Short: "Restore the previous game version from its backup",
		Long: `Restore the newest backup directory over the current installation.

Backups are removed once an update completes successfully, so rollback
only finds one after a failed update or when a backup directory was kept
manually.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			game, err := findGame(cfg, args[0])
			if err != nil {
				return err
			}

			t := translator(cfg)
			if err := newPipeline(cfg, game).Rollback(); err != nil {
				if apperrors.IsNoBackup(err) {
					return fmt.Errorf("%s", t.T("rollback.no_backup", game.DisplayName()))
				}
				return err
			}
			fmt.Println(t.T("rollback.done", game.DisplayName()))
			return nil
		},
	}
}
