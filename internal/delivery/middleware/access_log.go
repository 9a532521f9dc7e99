package middleware

import (
	"fmt"
	"log/slog"
	"time"

	deliverycontext "gasradar/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// HealthPath is served by both servers and never logged.
const HealthPath = "/health"

// AccessLog logs failed requests always and successful ones only when verbose is set.
func AccessLog(logger *slog.Logger, verbose bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Path() == HealthPath {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				// Let the error handler write the response so the logged status is final.
				c.Error(err)
			}

			status := c.Response().Status
			if status < 400 && !verbose {
				return nil
			}

			level := slog.LevelInfo
			switch {
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			req := c.Request()
			attrs := []slog.Attr{
				slog.String("request_id", deliverycontext.RequestID(c)),
				slog.String("method", req.Method),
				slog.String("route", c.Path()),
				slog.String("uri", req.URL.RequestURI()),
				slog.Int("status", status),
				slog.Int64("bytes_out", c.Response().Size),
				slog.Duration("latency", time.Since(start)),
				slog.String("remote_ip", c.RealIP()),
			}
			if userID, ok := c.Get(deliverycontext.UserIDKey).(fmt.Stringer); ok {
				attrs = append(attrs, slog.String("user_id", userID.String()))
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}

			logger.LogAttrs(req.Context(), level, "[HTTP] request", attrs...)

			return nil
		}
	}
}
