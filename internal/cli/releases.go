// Package cli provides Cobra command definitions for mbl.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

// NewReleasesCommand creates the releases command.
func NewReleasesCommand() *cobra.Command {
	var (
		limit int
		notes bool
	)

	cmd := &cobra.Command{
		Use:   "releases <game>",
		Short: "Show a game's release history",
		Long: `List the published releases of a game, newest first.

With --notes the release body of each entry is printed below the table.`,
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

			releases, err := newClient(cfg, game).Releases(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(releases) == 0 {
				fmt.Println("No releases published yet.")
				return nil
			}

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
			tbl := table.New("TAG", "PUBLISHED", "NAME", "PRERELEASE")
			tbl.WithHeaderFormatter(func(format string, vals ...interface{}) string {
				return headerStyle.Render(fmt.Sprintf(format, vals...))
			})
			for _, r := range releases {
				pre := ""
				if r.Prerelease {
					pre = "yes"
				}
				tbl.AddRow(r.TagName, r.Published().Local().Format("2006-01-02"), r.Name, pre)
			}
			tbl.Print()

			if notes {
				noteStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
				for _, r := range releases {
					if strings.TrimSpace(r.Body) == "" {
						continue
					}
					fmt.Printf("\n%s\n%s\n", headerStyle.Render(r.TagName), noteStyle.Render(strings.TrimSpace(r.Body)))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "number of releases to fetch")
	cmd.Flags().BoolVar(&notes, "notes", false, "print release notes")

	return cmd
}
