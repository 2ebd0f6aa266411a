// Package cli provides Cobra command definitions for mbl.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mirrorbytes/launcher/internal/launch"
)

// NewLaunchCommand creates the launch command.
func NewLaunchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "launch <game>",
		Short: "Start an installed game",
		Long: `Start the game's entry executable.

The game runs detached; it keeps running after mbl exits.`,
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

			pid, err := launch.Start(game.InstallDir, game.ExeName)
			if err != nil {
				return err
			}
			fmt.Println(translator(cfg).T("launch.started", game.DisplayName(), pid))
			return nil
		},
	}
}

// NewUninstallCommand creates the uninstall command.
func NewUninstallCommand() *cobra.Command {
	var keepSaves bool

	cmd := &cobra.Command{
		Use:   "uninstall <game>",
		Short: "Remove a game's installation",
		Long: `Delete the game's install directory.

Save data is untouched unless --keep-saves=false is given and a save
directory is configured.`,
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

			if _, err := os.Stat(game.InstallDir); os.IsNotExist(err) {
				fmt.Println(translator(cfg).T("uninstall.absent", game.DisplayName()))
				return nil
			}

			if err := launch.Uninstall(game.InstallDir); err != nil {
				return err
			}
			if !keepSaves && game.SaveDir != "" {
				if err := launch.Uninstall(game.SaveDir); err != nil {
					return err
				}
			}
			fmt.Println(translator(cfg).T("uninstall.done", game.DisplayName()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepSaves, "keep-saves", true, "keep the save directory")

	return cmd
}
