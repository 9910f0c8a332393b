// File: cmd/server/serve.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AymenS02/united-real-estate/internal/config"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server (default)",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	server, cleanup, err := initializeServer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}
	defer cleanup()

	if cfg.DBAutoMigrate {
		migrateOnStart(ctx, server)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	server.Logger().Info("Shutdown signal received")
	shutdownTimeout := cfg.ServerTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		server.Logger().Error("Server forced to shutdown", zap.Error(err))
		return err
	}
	server.Logger().Info("Server shutdown complete")
	return nil
}

// migrateOnStart runs the store migration but keeps serving when the store
// is unreachable; requests connect on first use.
func migrateOnStart(ctx context.Context, server migrator) bool {
	if err := server.Migrate(ctx); err != nil {
		server.Logger().Warn("Startup migration skipped, store will be dialed on first request", zap.Error(err))
		return false
	}
	return true
}

type migrator interface {
	Migrate(ctx context.Context) error
	Logger() *zap.Logger
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
