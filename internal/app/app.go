// Package app implements the application layer for forge.
package app

import (
	"context"

	"github.com/aphrodite-os/forge/internal/build"
	"github.com/aphrodite-os/forge/internal/core/domain"
	"github.com/aphrodite-os/forge/internal/core/ports"
	"github.com/aphrodite-os/forge/internal/engine/dispatcher"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader     ports.ConfigLoader
	dispatcher *dispatcher.Dispatcher
	logger     ports.Logger

	// Root is the project root. Defaults to the current directory.
	Root string
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, d *dispatcher.Dispatcher, logger ports.Logger) *App {
	return &App{
		loader:     loader,
		dispatcher: d,
		logger:     logger,
		Root:       ".",
	}
}

// Run executes one orchestration run: configuration load, version gate, then
// the per-target dispatch loop. The version gate runs exactly once, before
// any target work begins.
func (a *App) Run(ctx context.Context, req domain.RunRequest) error {
	a.dispatcher.Root = a.Root

	cfg, err := a.loader.Load(a.Root)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if err := a.gate(cfg); err != nil {
		return err
	}

	return a.dispatcher.Run(ctx, cfg, req)
}

// gate enforces that the configuration's declared version matches the
// orchestrator's own version. The continuation override downgrades the
// mismatch to a single warning.
func (a *App) gate(cfg *domain.Config) error {
	if cfg.Version == build.Version {
		return nil
	}

	if cfg.ContinueOnMismatch {
		a.logger.Warn("configuration declares version " + cfg.Version +
			" but orchestrator is " + build.Version + ", continuing anyway")
		return nil
	}

	return zerr.With(zerr.With(domain.ErrVersionMismatch,
		"configured", cfg.Version), "orchestrator", build.Version)
}

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}
