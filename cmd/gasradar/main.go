// Command gasradar serves the public API and runs the feed, history and alert jobs.
package main

import (
	"context"
	_ "time/tzdata"

	"gasradar/config"
	"gasradar/internal/delivery"
	"gasradar/internal/delivery/api"
	"gasradar/internal/delivery/api/middleware"
	"gasradar/internal/delivery/api/router/handler"
	"gasradar/internal/delivery/scheduler"
	"gasradar/internal/infra/auth"
	"gasradar/internal/infra/cache"
	"gasradar/internal/infra/feed"
	logs "gasradar/internal/infra/log"
	"gasradar/internal/infra/persistence/postgres"
	"gasradar/internal/infra/pubsub"
	"gasradar/internal/infra/qrcode"
	"gasradar/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.WithLogger(delivery.FxLogger),
		fx.Provide(config.New, logs.New, context.Background, postgres.New),
		persistence,
		services,
		usecases,
		httpHandlers,
		delivery.Provide(api.NewServer),
		delivery.Provide(scheduler.NewScheduler),
		fx.Invoke(delivery.Run),
	).Run()
}

var persistence = fx.Provide(
	postgres.NewTransactionManager,
	postgres.NewStationRepository,
	postgres.NewPriceHistoryRepository,
	postgres.NewReviewRepository,
	postgres.NewUserRepository,
	postgres.NewVehicleRepository,
	postgres.NewDeviceRepository,
	postgres.NewNotificationRepository,
)

var services = fx.Provide(
	feed.NewClient,
	feed.NewConverter,
	cache.NewQueryCache,
	auth.NewJWTService,
	pubsub.NewEventPublisher,
	qrcode.New,
)

var usecases = fx.Provide(
	impl.NewStationSyncService,
	impl.NewPriceHistoryService,
	impl.NewLowPriceService,
	impl.NewStationQueryService,
	impl.NewReviewService,
	impl.NewFavoriteService,
	impl.NewVehicleService,
	impl.NewDeviceService,
	impl.NewInboxService,
)

var httpHandlers = fx.Provide(
	middleware.NewAuthMiddleware,
	handler.NewStationHandler,
	handler.NewReviewHandler,
	handler.NewFavoriteHandler,
	handler.NewVehicleHandler,
	handler.NewDeviceHandler,
	handler.NewNotificationHandler,
	handler.NewTestHandler,
)
