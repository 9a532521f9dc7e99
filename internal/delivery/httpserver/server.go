// Package httpserver wraps echo with the listener, timeouts and shutdown shared by gasradar's HTTP processes.
package httpserver

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"gasradar/config"
	"gasradar/internal/delivery/middleware"
	"gasradar/internal/domain/lifecycle"
	"gasradar/internal/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/net/http2"
)

// Server is a Delivery around one echo instance.
type Server struct {
	name   string
	addr   string
	h2c    *http2.Server
	echo   *echo.Echo
	logger *slog.Logger
}

// Option customises a Server before routes are mounted.
type Option func(*Server)

// WithH2C serves HTTP/2 without TLS, for clients behind a TLS-terminating proxy.
func WithH2C() Option {
	return func(s *Server) {
		s.h2c = &http2.Server{IdleTimeout: s.echo.Server.IdleTimeout}
	}
}

// New builds a server named for its logs, with the common middleware chain and GET /health.
func New(name string, cfg *config.Config, logger *slog.Logger, opts ...Option) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	timeouts := cfg.HTTP.Timeouts
	e.Server.ReadTimeout = timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = timeouts.WriteTimeout
	e.Server.IdleTimeout = timeouts.IdleTimeout

	s := &Server{
		name:   name,
		addr:   net.JoinHostPort("0.0.0.0", strconv.Itoa(cfg.HTTP.Port)),
		echo:   e,
		logger: logger.With(slog.String("server", name)),
	}
	for _, opt := range opts {
		opt(s)
	}

	middleware.Install(e, logger, cfg.Env.Debug)
	e.GET(middleware.HealthPath, health)

	return s
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Echo exposes the router for mounting routes.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Serve blocks until the listener fails or Shutdown is called.
func (s *Server) Serve(_ context.Context) error {
	s.logger.Info("Starting HTTP server", slog.String("addr", s.addr), slog.Bool("h2c", s.h2c != nil))

	var err error
	if s.h2c != nil {
		err = s.echo.StartH2CServer(s.addr, s.h2c)
	} else {
		err = s.echo.Start(s.addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server", s.name)
	}

	return nil
}

// Shutdown drains in-flight requests for up to lifecycle.DefaultTimeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.echo.Shutdown(ctx))
}
