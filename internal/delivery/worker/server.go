// Package worker serves the Pub/Sub push endpoint of the push worker process.
package worker

import (
	"log/slog"

	"gasradar/config"
	"gasradar/internal/delivery"
	"gasradar/internal/delivery/httpserver"
	"gasradar/internal/delivery/worker/handler"

	"go.uber.org/fx"
)

// PushPath receives Pub/Sub push deliveries.
const PushPath = "/push"

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the push worker HTTP server. Pub/Sub retries pushes that
// are not acknowledged within its deadline, so WriteTimeout should stay below it.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := httpserver.New("pushworker", params.Cfg, params.Logger)
	srv.Echo().POST(PushPath, params.PushHandler.HandlePush)

	params.Lc.Append(fx.StopHook(srv.Shutdown))

	return srv, nil
}
