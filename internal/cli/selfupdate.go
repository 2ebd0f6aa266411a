// Package cli provides Cobra command definitions for mbl.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mirrorbytes/launcher/internal/github"
	"github.com/mirrorbytes/launcher/internal/selfupdate"
)

// NewSelfUpdateCommand creates the selfupdate command.
func NewSelfUpdateCommand() *cobra.Command {
	var (
		checkOnly bool
		yes       bool
	)

	cmd := &cobra.Command{
		Use:   "selfupdate",
		Short: "Update the launcher itself",
		Long: `Check the launcher's own release repository for a newer version and
install it over the running binary.

The downloaded archive is verified against the release checksums when
the release publishes them. On failure the previous binary is restored.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Launcher.SelfUpdateRepo == "" {
				return fmt.Errorf("self-update is disabled; set launcher.self_update_repo in the config")
			}
			owner, repo, _ := strings.Cut(cfg.Launcher.SelfUpdateRepo, "/")

			t := translator(cfg)
			client := github.NewClient(owner, repo, cfg.GitHub.Token)
			updater := selfupdate.New(client, "mbl", Version)

			result, err := updater.Check(cmd.Context())
			if err != nil {
				return err
			}
			if !result.Available {
				fmt.Println(t.T("selfupdate.current", result.Current))
				return nil
			}

			fmt.Println(t.T("selfupdate.available", result.Current, result.Latest))
			if checkOnly {
				return nil
			}
			if !yes {
				ok, err := confirmUpdate(cfg, fmt.Sprintf("Install launcher %s?", result.Latest))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(t.T("update.canceled"))
					return nil
				}
			}

			if err := updater.Apply(cmd.Context(), result.Release, nil); err != nil {
				return err
			}
			fmt.Println(t.T("selfupdate.done", result.Latest))
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check-only", false, "check for updates without installing")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip confirmation prompt")

	return cmd
}
