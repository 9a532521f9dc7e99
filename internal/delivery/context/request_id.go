// Package context carries request-scoped values between the delivery layer and the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type ctxKey string

const (
	keyRequestID ctxKey = "request_id"
	keyLogger    ctxKey = "logger"
	keyJob       ctxKey = "job"

	// HeaderXRequestID is the HTTP header that carries the request ID.
	HeaderXRequestID = "X-Request-Id"

	// UserIDKey is the echo context key of the authenticated user's uuid.UUID.
	UserIDKey = "userID"
)

// RequestID returns the ID assigned to the request by the request ID middleware.
// It falls back to the response header when the middleware did not store it.
func RequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok && id != "" {
		return id
	}

	return c.Response().Header().Get(HeaderXRequestID)
}

// SetRequestID stores the request ID on the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(keyRequestID), requestID)
}

// RequestIDFromContext returns "" when no ID was attached.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// WithJob tags ctx with the name of the scheduled job running it.
func WithJob(ctx context.Context, job string) context.Context {
	return context.WithValue(ctx, keyJob, job)
}

func JobFromContext(ctx context.Context) string {
	job, _ := ctx.Value(keyJob).(string)

	return job
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// Logger returns the scoped logger attached to ctx, or fallback.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}
