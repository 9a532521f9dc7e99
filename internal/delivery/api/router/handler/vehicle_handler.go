package handler

import (
	"net/http"

	"gasradar/internal/delivery/api/middleware"
	"gasradar/internal/delivery/api/response"
	"gasradar/internal/domain/entity"
	"gasradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// VehicleHandler serves a user's vehicles
type VehicleHandler struct {
	vehicleUC usecase.VehicleUsecase
}

// NewVehicleHandler is the constructor for VehicleHandler
func NewVehicleHandler(vehicleUC usecase.VehicleUsecase) *VehicleHandler {
	return &VehicleHandler{vehicleUC: vehicleUC}
}

// AddVehicleRequest represents the request body for registering a vehicle
type AddVehicleRequest struct {
	Brand    string `json:"brand" validate:"required,max=100"`
	Model    string `json:"model" validate:"max=100"`
	FuelType string `json:"fuel_type" validate:"required,fueltype"`
}

// AddVehicle handles POST /api/v1/vehicles
func (h *VehicleHandler) AddVehicle(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddVehicleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vehicle input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationFailed(c, err)
	}

	fuelType, _ := entity.ParseFuelType(req.FuelType)
	vehicle, err := h.vehicleUC.AddVehicle(c.Request().Context(), userID, &usecase.VehicleInfo{
		Brand:    req.Brand,
		Model:    req.Model,
		FuelType: fuelType,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, vehicle)
}

// ListVehicles handles GET /api/v1/vehicles
func (h *VehicleHandler) ListVehicles(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	vehicles, err := h.vehicleUC.ListVehicles(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.List(c, vehicles)
}

// RemoveVehicle handles DELETE /api/v1/vehicles/:id
func (h *VehicleHandler) RemoveVehicle(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	vehicleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid vehicle ID")
	}

	if err := h.vehicleUC.RemoveVehicle(c.Request().Context(), userID, vehicleID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Vehicle removed"})
}
