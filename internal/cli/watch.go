// Package cli provides Cobra command definitions for mbl.
package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kardianos/service"
	"github.com/spf13/cobra"

	"github.com/mirrorbytes/launcher/internal/config"
	"github.com/mirrorbytes/launcher/internal/i18n"
	"github.com/mirrorbytes/launcher/internal/watch"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch for game updates in the foreground",
		Long: `Run periodic update checks for every configured game.

The schedule comes from launcher.check_schedule (a cron expression,
"@hourly" by default). An immediate check runs at startup. Use
"mbl service install" to run the watcher in the background instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			t := translator(cfg)
			w := watch.New(cfg, watchPrinter(t))

			if err := w.Start(); err != nil {
				return err
			}
			defer w.Stop()

			fmt.Println(t.T("watch.started", cfg.Launcher.CheckSchedule))
			w.RunOnce(cmd.Context())

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			select {
			case <-sig:
			case <-cmd.Context().Done():
			}
			return nil
		},
	}
}

// watchPrinter reports check events on stdout.
func watchPrinter(t *i18n.Translator) watch.Handler {
	return func(e watch.Event) {
		switch {
		case e.Err != nil:
			fmt.Fprintf(os.Stderr, "%s: %v\n", e.Game.DisplayName(), e.Err)
		case e.Result.Available:
			fmt.Println(t.T("watch.event", e.Game.DisplayName(), e.Result.Version))
		}
	}
}

// NewServiceCommand creates the service command group.
func NewServiceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service <install|uninstall|start|stop|status>",
		Short: "Run the update watcher as a system service",
		Long: `Install or control a background service that runs "mbl watch".

The service is registered with the operating system's service manager
(systemd, launchd or the Windows service manager).`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"install", "uninstall", "start", "stop", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runService(cfg, args[0])
		},
	}
	return cmd
}

func runService(cfg *config.Config, action string) error {
	w := watch.New(cfg, watchPrinter(translator(cfg)))

	svcArgs := []string{"watch"}
	if ConfigPath != "" {
		svcArgs = append(svcArgs, "--config", ConfigPath)
	}
	svc, err := watch.NewService(w, svcArgs)
	if err != nil {
		return err
	}

	if action == "status" {
		status, err := svc.Status()
		if err != nil {
			return err
		}
		switch status {
		case service.StatusRunning:
			fmt.Println("running")
		case service.StatusStopped:
			fmt.Println("stopped")
		default:
			fmt.Println("not installed")
		}
		return nil
	}

	if err := service.Control(svc, action); err != nil {
		return err
	}
	fmt.Printf("service %s: done\n", action)
	return nil
}
