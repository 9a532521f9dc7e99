package httpserver

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"gasradar/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(opts ...Option) *Server {
	cfg := &config.Config{}
	cfg.HTTP.Port = 0

	return New("test", cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), opts...)
}

func TestServer_Health(t *testing.T) {
	s := newTestServer()

	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_MountedRoutesGetMiddleware(t *testing.T) {
	s := newTestServer(WithH2C())
	require.NotNil(t, s.h2c)

	s.Echo().GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)

	assert.Equal(t, "pong", rec.Body.String())
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
}

func TestServer_ShutdownBeforeServe(t *testing.T) {
	s := newTestServer()

	assert.NoError(t, s.Shutdown(context.Background()))
}
