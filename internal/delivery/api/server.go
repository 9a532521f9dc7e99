// Package api serves the public REST API.
package api

import (
	"log/slog"
	"net/http"

	"gasradar/config"
	"gasradar/internal/delivery"
	apimiddleware "gasradar/internal/delivery/api/middleware"
	"gasradar/internal/delivery/api/router"
	"gasradar/internal/delivery/api/validator"
	"gasradar/internal/delivery/httpserver"

	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the API server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Routes router.Params
}

// NewServer builds the h2c API server and registers its shutdown hook.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := httpserver.New("api", params.Cfg, params.Logger, httpserver.WithH2C())
	e := srv.Echo()

	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(params.Logger).HandleHTTPError
	e.Validator = validator.New()

	router.Register(e, params.Routes)

	params.Lc.Append(fx.StopHook(srv.Shutdown))

	return srv, nil
}
