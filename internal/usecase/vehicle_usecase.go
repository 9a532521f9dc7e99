package usecase

import (
	"context"

	"gasradar/internal/domain/entity"

	"github.com/google/uuid"
)

// VehicleInfo is the data needed to register a vehicle.
type VehicleInfo struct {
	Brand    string
	Model    string
	FuelType entity.FuelType
}

// VehicleUsecase manages user vehicles, which drive low-price alert preferences.
type VehicleUsecase interface {
	AddVehicle(ctx context.Context, userID uuid.UUID, info *VehicleInfo) (*entity.Vehicle, error)
	ListVehicles(ctx context.Context, userID uuid.UUID) ([]*entity.Vehicle, error)
	RemoveVehicle(ctx context.Context, userID, vehicleID uuid.UUID) error
}
