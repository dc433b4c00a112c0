//go:build wireinject
// +build wireinject

package di

import (
	"focustimer/internal"
	"focustimer/internal/controllers"
	"focustimer/internal/providers"
	"focustimer/internal/services"
	"focustimer/internal/storage"
	"focustimer/internal/structures"
	"focustimer/internal/timer"

	wire "github.com/google/wire"
)

var coreSet = wire.NewSet(
	providers.NewConfigProvider,
	providers.NewLogProvider,
	providers.NewMetricsProvider,
	providers.NewNotifierProvider,

	storage.NewStore,
	services.NewSessionService,
	services.NewStatsService,
	services.NewTransferService,
)

func InitApp(cfg *structures.CliFlags) (*internal.App, func(), error) {

	wire.Build(
		coreSet,
		providers.NewInstrumentedCacheProvider,
		timer.NewTimerProvider,

		controllers.NewSessionController,
		controllers.NewSettingsController,
		controllers.NewStatsController,
		controllers.NewTransferController,
		controllers.NewTimerController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil, nil
}

func InitToolkit(cfg *structures.CliFlags) (*Toolkit, func(), error) {

	wire.Build(
		coreSet,
		wire.Struct(new(Toolkit), "*"),
	)

	return nil, nil, nil
}
