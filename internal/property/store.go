// File: internal/property/store.go
package property

import (
	"context"
	"fmt"
	"time"

	"github.com/AymenS02/united-real-estate/internal/config"
	"github.com/AymenS02/united-real-estate/internal/platform/database"
	"github.com/AymenS02/united-real-estate/internal/platform/mongodb"

	"go.uber.org/zap"
)

const closeTimeout = 10 * time.Second

// NewRepository builds the repository selected by STORE_DRIVER. Nothing is
// dialed here; the store is connected on first use. The returned cleanup
// closes the connection if one was made.
func NewRepository(cfg *config.Config, logger *zap.Logger) (Repository, func(), error) {
	closeWith := func(name string, closeFn func(context.Context) error) func() {
		return func() {
			ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
			defer cancel()
			if err := closeFn(ctx); err != nil {
				logger.Error("Failed to close store", zap.String("store", name), zap.Error(err))
			}
		}
	}

	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		gw := mongodb.NewGateway(cfg, logger)
		return NewMongoRepository(gw, cfg.MongoDatabase, cfg.MongoCollection), closeWith("mongodb", gw.Close), nil
	case config.StoreDriverPostgres, config.StoreDriverSQLite:
		gw := database.NewGateway(cfg, logger)
		return NewGORMRepository(gw), closeWith(cfg.StoreDriver, gw.Close), nil
	default:
		return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}
