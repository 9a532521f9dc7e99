package handler

import (
	"log/slog"
	"net/http"

	"gasradar/internal/delivery/api/response"
	"gasradar/internal/domain/entity"
	"gasradar/internal/domain/service"
	"gasradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StationHandlerParams holds dependencies for StationHandler, injected by Fx.
type StationHandlerParams struct {
	fx.In

	StationQueryUC usecase.StationQueryUsecase
	PriceHistoryUC usecase.PriceHistoryUsecase
	QRCodeSvc      service.QRCodeService
	Logger         *slog.Logger
}

// StationHandler serves station search, detail and history
type StationHandler struct {
	stationQueryUC usecase.StationQueryUsecase
	priceHistoryUC usecase.PriceHistoryUsecase
	qrcodeSvc      service.QRCodeService
	logger         *slog.Logger
}

// NewStationHandler is the constructor for StationHandler
func NewStationHandler(params StationHandlerParams) *StationHandler {
	return &StationHandler{
		stationQueryUC: params.StationQueryUC,
		priceHistoryUC: params.PriceHistoryUC,
		qrcodeSvc:      params.QRCodeSvc,
		logger:         params.Logger,
	}
}

// NearbyRequest represents the query string of a nearby search
type NearbyRequest struct {
	Latitude     *float64 `query:"latitude" validate:"required,latitude"`
	Longitude    *float64 `query:"longitude" validate:"required,longitude"`
	RadiusKm     float64  `query:"radius" validate:"gte=0"`
	Limit        int      `query:"limit" validate:"gte=0,lte=500"`
	FuelType     string   `query:"fuelType" validate:"omitempty,fueltype"`
	Brand        string   `query:"brand" validate:"max=100"`
	MinRating    *float64 `query:"minRating" validate:"omitempty,gte=0,lte=5"`
	Availability string   `query:"availability" validate:"omitempty,oneof=open closed all"`
}

// ResolveQRRequest carries the decoded text of a scanned station QR code
type ResolveQRRequest struct {
	Content string `json:"content" validate:"required,max=2048"`
}

// HistoryRequest represents the query string of a price history read
type HistoryRequest struct {
	Days int `query:"days" validate:"gte=0,lte=365"`
}

// FindNearby handles GET /api/v1/stations/nearby
func (h *StationHandler) FindNearby(c echo.Context) error {
	var req NearbyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	query := &usecase.NearbyQuery{
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		RadiusKm:     req.RadiusKm,
		Limit:        req.Limit,
		Brand:        req.Brand,
		MinRating:    req.MinRating,
		Availability: entity.Availability(req.Availability),
	}
	if req.FuelType != "" {
		query.FuelType, _ = entity.ParseFuelType(req.FuelType)
	}

	stations, err := h.stationQueryUC.FindNearby(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, stations)
}

// GetStation handles GET /api/v1/stations/:idEESS
func (h *StationHandler) GetStation(c echo.Context) error {
	idEESS, ok := stationParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid station ID")
	}

	detail, err := h.stationQueryUC.GetStation(c.Request().Context(), idEESS)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// GetHistory handles GET /api/v1/stations/:idEESS/history
func (h *StationHandler) GetHistory(c echo.Context) error {
	idEESS, ok := stationParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid station ID")
	}

	var req HistoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid history parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	entries, err := h.priceHistoryUC.GetStationHistory(c.Request().Context(), idEESS, req.Days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, entries)
}

// GetQRCode handles GET /api/v1/stations/:idEESS/qrcode
func (h *StationHandler) GetQRCode(c echo.Context) error {
	idEESS, ok := stationParam(c)
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid station ID")
	}

	// Resolve first so unknown stations get a 404 instead of a QR code.
	if _, err := h.stationQueryUC.GetStation(c.Request().Context(), idEESS); err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.qrcodeSvc.GenerateStationQR(idEESS)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ResolveQR handles POST /api/v1/stations/resolve-qr
func (h *StationHandler) ResolveQR(c echo.Context) error {
	var req ResolveQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	idEESS, err := h.qrcodeSvc.ParseStationQR(req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.stationQueryUC.GetStation(c.Request().Context(), idEESS)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, detail)
}
