package main

import (
	"context"
	"time"

	"gasradar/config"
	"gasradar/internal/infra/cache"
	"gasradar/internal/infra/feed"
	"gasradar/internal/infra/geocode"
	logs "gasradar/internal/infra/log"
	"gasradar/internal/infra/persistence/postgres"
	"gasradar/internal/infra/pubsub"
	"gasradar/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const startStopTimeout = 30 * time.Second

// withApp builds the same object graph as the server, populates targets,
// runs fn between start and stop, and tears everything down.
func withApp(ctx context.Context, fn func(ctx context.Context) error, targets ...any) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewStationRepository,
			postgres.NewPriceHistoryRepository,
			postgres.NewUserRepository,
			postgres.NewVehicleRepository,
			postgres.NewNotificationRepository,
			feed.NewClient,
			feed.NewConverter,
			cache.NewQueryCache,
			geocode.NewNominatimGeocoder,
			pubsub.NewEventPublisher,
			impl.NewStationSyncService,
			impl.NewPriceHistoryService,
			impl.NewStationQueryService,
			impl.NewLowPriceService,
		),
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, startStopTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "start application")
	}

	runErr := fn(ctx)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), startStopTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "stop application")
	}

	return runErr
}
