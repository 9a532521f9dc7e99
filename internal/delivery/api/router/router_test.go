package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"gasradar/config"
	"gasradar/internal/delivery/api/middleware"
	"gasradar/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func testParams(testRoutes bool) Params {
	return Params{
		Station:      &handler.StationHandler{},
		Review:       &handler.ReviewHandler{},
		Favorite:     &handler.FavoriteHandler{},
		Vehicle:      &handler.VehicleHandler{},
		Notification: &handler.NotificationHandler{},
		Device:       &handler.DeviceHandler{},
		Test:         &handler.TestHandler{},
		Auth:         &middleware.AuthMiddleware{},
		Config:       &config.Config{TestRoutes: &config.TestRoutesConfig{Enabled: testRoutes}},
	}
}

func routeSet(e *echo.Echo) map[string]bool {
	routes := make(map[string]bool)
	for _, r := range e.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	return routes
}

func TestRegister(t *testing.T) {
	e := echo.New()
	Register(e, testParams(false))
	routes := routeSet(e)

	for _, want := range []string{
		http.MethodGet + " /api/v1/stations/nearby",
		http.MethodPost + " /api/v1/stations/resolve-qr",
		http.MethodGet + " /api/v1/stations/:idEESS/history",
		http.MethodPost + " /api/v1/stations/:idEESS/reviews",
		http.MethodDelete + " /api/v1/favorites/:idEESS",
		http.MethodPatch + " /api/v1/notifications/:id/read",
		http.MethodPut + " /api/v1/devices/:id/token",
	} {
		assert.True(t, routes[want], want)
	}
	assert.False(t, routes[http.MethodPost+" /api/v1/test/jobs/:job/run"])
}

func TestRegister_TestRoutes(t *testing.T) {
	e := echo.New()
	Register(e, testParams(true))
	routes := routeSet(e)

	assert.True(t, routes[http.MethodGet+" /api/v1/test/whoami"])
	assert.True(t, routes[http.MethodPost+" /api/v1/test/jobs/:job/run"])
}

func TestRegister_PrivateRoutesRequireToken(t *testing.T) {
	e := echo.New()
	Register(e, testParams(false))

	for _, target := range []string{"/api/v1/favorites", "/api/v1/devices", "/api/v1/stations/1001"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}
