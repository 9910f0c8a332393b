// File: cmd/server/providers.go
package main

import (
	"log"

	"github.com/AymenS02/united-real-estate/internal/config"
	"github.com/AymenS02/united-real-estate/internal/platform/logger"

	"go.uber.org/zap"
)

// provideLogger builds the application logger; its cleanup flushes buffered entries.
func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	appLogger, err := logger.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return appLogger, func() {
		if err := appLogger.Sync(); err != nil {
			log.Printf("ERROR: Failed to sync logger during cleanup: %v", err)
		}
	}, nil
}
