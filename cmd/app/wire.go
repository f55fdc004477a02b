//go:build wireinject
// +build wireinject

package main

import (
	"recruithub/config"
	"recruithub/internal/command"
	"recruithub/internal/cron"
	"recruithub/internal/database"
	"recruithub/internal/handler"
	"recruithub/internal/middleware"
	"recruithub/internal/router"
	"recruithub/internal/service"
	"recruithub/internal/storage"
	"recruithub/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			storage.ProviderSet,
			newHttpServer,
			newHttpClient,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(wire.Build(command.ProviderSet, database.ProviderSet, telemetry.ProviderSet))
}
