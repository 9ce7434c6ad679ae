package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/storefront/storefront-api/internal/config"
	"github.com/storefront/storefront-api/internal/container"
	"github.com/storefront/storefront-api/internal/platform/logger"
)

// application bundles the process-wide dependencies: configuration, the
// root logger, and the container holding the wired object graph. It is
// constructed once in main and torn down once.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	container *container.Container
}

// newApplication loads configuration, configures logging, and wires the
// container. Nothing in the graph is constructed yet; the database opens on
// first resolution (migrations or the first request, whichever comes first).
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	c, err := container.Wire(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to wire container: %w", err)
	}

	appLogger.Info("application initialized",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"messaging_provider", cfg.Messaging.Provider)

	return &application{
		config:    cfg,
		logger:    appLogger,
		container: c,
	}, nil
}

// run applies pending migrations, builds the router, and serves HTTP until
// shutdown.
func (app *application) run(ctx context.Context) error {
	if err := app.runMigrationCommand("up"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	router, err := app.setupRouter()
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	return app.startHTTPServer(ctx, router)
}

// cleanup tears down the container, releasing the database handle. Safe to
// call multiple times.
func (app *application) cleanup() {
	if err := app.container.Close(); err != nil {
		app.logger.Error("container teardown failed", "error", err)
	}
}
