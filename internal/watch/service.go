package watch

import (
	"github.com/kardianos/service"
)

// ServiceName is the system service identifier.
const ServiceName = "mbl-watch"

// program adapts the watcher to the service manager's lifecycle.
type program struct {
	watcher *Watcher
}

func (p *program) Start(s service.Service) error {
	// Start must not block; the cron schedule runs in the background.
	return p.watcher.Start()
}

func (p *program) Stop(s service.Service) error {
	p.watcher.Stop()
	return nil
}

// NewService wraps the watcher in a system service that runs
// `mbl watch` in the background. args are passed to the binary when the
// service manager starts it.
func NewService(w *Watcher, args []string) (service.Service, error) {
	options := make(service.KeyValue)
	var depends []string

	// The watcher is useless before the network is up.
	switch service.ChosenSystem().String() {
	case "linux-systemd":
		depends = append(depends,
			"Requires=network.target",
			"After=network-online.target")
		options["Restart"] = "on-failure"
		options["RestartSec"] = 10
	case "darwin-launchd":
		options["KeepAlive"] = true
		options["RunAtLoad"] = true
	case "windows-service":
		options["DelayedAutoStart"] = true
		options["OnFailure"] = "restart"
	}

	svcConfig := &service.Config{
		Name:         ServiceName,
		DisplayName:  "Mirrorbytes Launcher update watcher",
		Description:  "Periodically checks for game updates in the background.",
		Arguments:    args,
		Dependencies: depends,
		Option:       options,
	}

	return service.New(&program{watcher: w}, svcConfig)
}
