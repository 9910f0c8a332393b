// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"github.com/AymenS02/united-real-estate/internal/app"
	"github.com/AymenS02/united-real-estate/internal/config"
	"github.com/AymenS02/united-real-estate/internal/dashboard"
	"github.com/AymenS02/united-real-estate/internal/property"

	"github.com/google/wire"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		provideLogger,

		// Listings
		property.NewRepository,
		property.NewService,
		wire.Bind(new(property.Service), new(*property.ServiceImplementation)),
		property.NewHandler,

		// Dashboard
		dashboard.ProvideAPIClient,
		wire.Bind(new(dashboard.Backend), new(*dashboard.APIClient)),
		dashboard.NewHandler,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}
