package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// Install adds the common chain in order: panic recovery, request ID, access log.
func Install(e *echo.Echo, logger *slog.Logger, verbose bool) {
	e.Use(echomiddleware.Recover())
	e.Use(RequestID(logger))
	e.Use(AccessLog(logger, verbose))
}
