// File: cmd/server/migrate.go
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/AymenS02/united-real-estate/internal/platform/logger"
	"github.com/AymenS02/united-real-estate/internal/property"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const migrateTimeout = time.Minute

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Create the listings table or collection indexes for the configured store",
	Action: func(cCtx *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		appLogger, err := logger.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer func() { _ = appLogger.Sync() }()

		repo, cleanup, err := property.NewRepository(cfg, appLogger)
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(cCtx.Context, migrateTimeout)
		defer cancel()

		if err := repo.Migrate(ctx); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		appLogger.Info("Migration completed", zap.String("store_driver", cfg.StoreDriver))
		return nil
	},
}
