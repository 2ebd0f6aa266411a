// Package cli provides Cobra command definitions for mbl.
package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/mirrorbytes/launcher/internal/update"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured games and their installed versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if len(cfg.Games) == 0 {
				fmt.Println("No games configured. Add a [[games]] entry to the config.")
				return nil
			}

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
			tbl := table.New("ID", "NAME", "REPOSITORY", "INSTALLED")
			tbl.WithHeaderFormatter(func(format string, vals ...interface{}) string {
				return headerStyle.Render(fmt.Sprintf(format, vals...))
			})
			for i := range cfg.Games {
				game := &cfg.Games[i]
				installed, err := update.ReadInstalledVersion(game.InstallDir)
				if err != nil {
					return err
				}
				if installed == "" {
					installed = "-"
				}
				tbl.AddRow(game.ID, game.DisplayName(), game.Slug(), installed)
			}
			tbl.Print()
			return nil
		},
	}
}
