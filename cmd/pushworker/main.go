// Command pushworker receives alert events from Pub/Sub push and delivers them over FCM.
package main

import (
	"context"

	"gasradar/config"
	"gasradar/internal/delivery"
	"gasradar/internal/delivery/worker"
	"gasradar/internal/delivery/worker/handler"
	logs "gasradar/internal/infra/log"
	"gasradar/internal/infra/notification"
	"gasradar/internal/infra/persistence/postgres"
	"gasradar/internal/usecase/impl"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		fx.WithLogger(delivery.FxLogger),
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewDeviceRepository,
			postgres.NewNotificationRepository,
			notification.New,
			impl.NewPushService,
			handler.NewPushHandler,
		),
		delivery.Provide(worker.NewServer),
		fx.Invoke(delivery.Run),
	).Run()
}
