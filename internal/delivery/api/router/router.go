// Package router mounts the public API routes.
package router

import (
	"gasradar/config"
	"gasradar/internal/delivery/api/middleware"
	"gasradar/internal/delivery/api/router/handler"
	"gasradar/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Params are the handlers served by the API, injected by Fx.
type Params struct {
	fx.In

	Station      *handler.StationHandler
	Review       *handler.ReviewHandler
	Favorite     *handler.FavoriteHandler
	Vehicle      *handler.VehicleHandler
	Notification *handler.NotificationHandler
	Device       *handler.DeviceHandler
	Test         *handler.TestHandler
	Auth         *middleware.AuthMiddleware
	Config       *config.Config
}

// Register mounts every /api/v1 route on e, plus the test routes when enabled.
func Register(e *echo.Echo, p Params) {
	v1 := e.Group("/api/v1")
	auth := p.Auth.Authenticate

	// Only the map search is public.
	stations := v1.Group("/stations")
	stations.GET("/nearby", p.Station.FindNearby)
	stations.POST("/resolve-qr", p.Station.ResolveQR, auth)
	stations.GET("/:idEESS", p.Station.GetStation, auth)
	stations.GET("/:idEESS/history", p.Station.GetHistory, auth)
	stations.GET("/:idEESS/qrcode", p.Station.GetQRCode, auth)
	stations.GET("/:idEESS/reviews", p.Review.ListReviews, auth)
	stations.POST("/:idEESS/reviews", p.Review.AddReview, auth)

	favorites := v1.Group("/favorites", auth)
	favorites.GET("", p.Favorite.ListFavorites)
	favorites.POST("/:idEESS", p.Favorite.SaveStation)
	favorites.DELETE("/:idEESS", p.Favorite.RemoveStation)

	vehicles := v1.Group("/vehicles", auth)
	vehicles.GET("", p.Vehicle.ListVehicles)
	vehicles.POST("", p.Vehicle.AddVehicle)
	vehicles.DELETE("/:id", p.Vehicle.RemoveVehicle)

	notifications := v1.Group("/notifications", auth)
	notifications.GET("", p.Notification.ListNotifications)
	notifications.PATCH("/:id/read", p.Notification.MarkRead)

	devices := v1.Group("/devices", auth)
	devices.POST("", p.Device.RegisterDevice)
	devices.GET("", p.Device.ListDevices)
	devices.PUT("/:id/token", p.Device.UpdatePushToken)
	devices.DELETE("/:id", p.Device.DeactivateDevice)

	if p.Config.TestRoutes != nil && p.Config.TestRoutes.Enabled {
		registerTestRoutes(e, p)
	}
}

func registerTestRoutes(e *echo.Echo, p Params) {
	test := e.Group("/api/v1/test", p.Auth.Authenticate)
	test.GET("/whoami", p.Test.Whoami)
	test.POST("/jobs/:job/run", p.Test.RunJob, p.Auth.RequireRole(entity.RoleOperator))
}
