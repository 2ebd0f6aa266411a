package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mirrorbytes/launcher/internal/cli"
)

// Version is set at build time using ldflags
var Version = "dev"

// Commit is set at build time using ldflags
var Commit = "unknown"

// Date is set at build time using ldflags
var Date = "unknown"

func main() {
	cli.Version = Version

	rootCmd := &cobra.Command{
		Use:   "mbl",
		Short: "Game launcher and updater",
		Long: `mbl keeps a catalog of games published as GitHub releases: it checks
for new versions, downloads and installs them with automatic rollback,
backs up save data, and can watch for updates in the background.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	// Add global flags
	cli.AddGlobalFlags(rootCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(cli.NewInitCommand())
	rootCmd.AddCommand(cli.NewListCommand())
	rootCmd.AddCommand(cli.NewCheckCommand())
	rootCmd.AddCommand(cli.NewUpdateCommand())
	rootCmd.AddCommand(cli.NewRollbackCommand())
	rootCmd.AddCommand(cli.NewReleasesCommand())
	rootCmd.AddCommand(cli.NewLaunchCommand())
	rootCmd.AddCommand(cli.NewUninstallCommand())
	rootCmd.AddCommand(cli.NewBackupCommand())
	rootCmd.AddCommand(cli.NewWatchCommand())
	rootCmd.AddCommand(cli.NewServiceCommand())
	rootCmd.AddCommand(cli.NewSelfUpdateCommand())
	rootCmd.AddCommand(cli.NewVersionCommand(Version, Commit, Date))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
