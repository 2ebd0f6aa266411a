// Package cli provides Cobra command definitions for mbl.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/mirrorbytes/launcher/internal/backup"
	"github.com/mirrorbytes/launcher/internal/config"
)

// NewBackupCommand creates the backup command group.
func NewBackupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage save-game backups",
		Long: `Create, list, restore and delete save-game backups.

Backups copy the game's configured save directory; restoring first takes
a pre-restore backup of the current saves so a restore can itself be
undone.`,
	}

	cmd.AddCommand(newBackupCreateCommand())
	cmd.AddCommand(newBackupListCommand())
	cmd.AddCommand(newBackupRestoreCommand())
	cmd.AddCommand(newBackupDeleteCommand())

	return cmd
}

func backupManager(cfg *config.Config) *backup.Manager {
	return backup.NewManager(cfg.Launcher.BackupsDir, cfg.Launcher.MaxBackups)
}

func newBackupCreateCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create <game>",
		Short: "Back up a game's save directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			game, err := findGame(cfg, args[0])
			if err != nil {
				return err
			}

			if name == "" {
				name = "manual backup"
			}
			meta, err := backupManager(cfg).Create(game, name, backup.KindManual)
			if err != nil {
				return err
			}

			t := translator(cfg)
			fmt.Println(t.T("backup.created", meta.Name, humanize.Bytes(uint64(meta.SizeBytes))))
			fmt.Printf("  id: %s\n", meta.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name for the backup")

	return cmd
}

func newBackupListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <game>",
		Short: "List a game's backups, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			game, err := findGame(cfg, args[0])
			if err != nil {
				return err
			}

			backups, err := backupManager(cfg).List(game.ID)
			if err != nil {
				return err
			}
			t := translator(cfg)
			if len(backups) == 0 {
				fmt.Println(t.T("backup.none"))
				return nil
			}

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
			tbl := table.New("ID", "NAME", "KIND", "CREATED", "SIZE")
			tbl.WithHeaderFormatter(func(format string, vals ...interface{}) string {
				return headerStyle.Render(fmt.Sprintf(format, vals...))
			})
			for _, b := range backups {
				tbl.AddRow(b.ID, b.Name, b.Kind, b.Created.Local().Format("2006-01-02 15:04"), humanize.Bytes(uint64(b.SizeBytes)))
			}
			tbl.Print()
			return nil
		},
	}
}

func newBackupRestoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <game> <backup-id>",
		Short: "Restore a backup over the current save directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			game, err := findGame(cfg, args[0])
			if err != nil {
				return err
			}

			meta, err := backupManager(cfg).Restore(game, args[1])
			if err != nil {
				return err
			}
			fmt.Println(translator(cfg).T("backup.restored", meta.Name))
			return nil
		},
	}
}

func newBackupDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game> <backup-id>",
		Short: "Delete a backup",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			game, err := findGame(cfg, args[0])
			if err != nil {
				return err
			}

			if err := backupManager(cfg).Delete(game.ID, args[1]); err != nil {
				return err
			}
			fmt.Println(translator(cfg).T("backup.deleted"))
			return nil
		},
	}
}
