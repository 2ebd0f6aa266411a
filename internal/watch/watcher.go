// Package watch runs periodic update checks for the configured games.
package watch

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mirrorbytes/launcher/internal/config"
	"github.com/mirrorbytes/launcher/internal/github"
	"github.com/mirrorbytes/launcher/internal/update"
)

// checkTimeout bounds one game's update check.
const checkTimeout = 2 * time.Minute

// Event is delivered to the handler after each per-game check.
type Event struct {
	Game   *config.GameConfig
	Result *update.CheckResult
	Err    error
}

// Handler receives check events. It is called sequentially.
type Handler func(Event)

// Watcher schedules update checks for every game in the catalog.
type Watcher struct {
	cfg     *config.Config
	handler Handler

	// newClient builds the release client per game; tests point it at
	// a local server.
	newClient func(*config.GameConfig) *github.Client

	mu   sync.Mutex
	cron *cron.Cron
}

// New creates a watcher over the config's game catalog.
func New(cfg *config.Config, handler Handler) *Watcher {
	w := &Watcher{
		cfg:     cfg,
		handler: handler,
	}
	w.newClient = func(g *config.GameConfig) *github.Client {
		return github.NewClient(g.Owner, g.Repo, cfg.GitHub.Token)
	}
	return w
}

// SetClientFactory overrides release client construction (useful for testing).
func (w *Watcher) SetClientFactory(f func(*config.GameConfig) *github.Client) {
	w.newClient = f
}

// Start registers the configured schedule and begins checking. It does
// not block; Stop shuts the schedule down.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	c := cron.New()
	if _, err := c.AddFunc(w.cfg.Launcher.CheckSchedule, func() {
		w.RunOnce(context.Background())
	}); err != nil {
		return err
	}
	c.Start()
	w.cron = c
	return nil
}

// Stop halts the schedule and waits for a running check to finish.
func (w *Watcher) Stop() {
	w.mu.Lock()
	c := w.cron
	w.cron = nil
	w.mu.Unlock()

	if c != nil {
		<-c.Stop().Done()
	}
}

// RunOnce checks every game in the catalog now, delivering one event
// per game.
func (w *Watcher) RunOnce(ctx context.Context) {
	for i := range w.cfg.Games {
		game := &w.cfg.Games[i]
		w.checkGame(ctx, game)
	}
}

func (w *Watcher) checkGame(ctx context.Context, game *config.GameConfig) {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	pipeline := update.NewPipeline(w.newClient(game), game.InstallDir, game.ExeName)
	result, err := pipeline.Check(ctx)
	w.handler(Event{Game: game, Result: result, Err: err})
}
