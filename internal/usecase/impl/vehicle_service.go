package impl

import (
	"context"
	"strings"
	"time"

	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/domain/repository"
	"gasradar/internal/errors"
	"gasradar/internal/usecase"

	"github.com/google/uuid"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	now         func() time.Time
}

// NewVehicleService creates a new vehicle service instance
func NewVehicleService(vehicleRepo repository.VehicleRepository) usecase.VehicleUsecase {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		now:         time.Now,
	}
}

// AddVehicle registers a vehicle for the user
func (s *vehicleService) AddVehicle(ctx context.Context, userID uuid.UUID, info *usecase.VehicleInfo) (*entity.Vehicle, error) {
	if !info.FuelType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown fuel type")
	}

	vehicle := &entity.Vehicle{
		ID:        uuid.New(),
		UserID:    userID,
		Brand:     strings.TrimSpace(info.Brand),
		Model:     strings.TrimSpace(info.Model),
		FuelType:  info.FuelType,
		CreatedAt: s.now(),
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// ListVehicles returns the user's vehicles, oldest first
func (s *vehicleService) ListVehicles(ctx context.Context, userID uuid.UUID) ([]*entity.Vehicle, error) {
	vehicles, err := s.vehicleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "list vehicles")
	}

	return vehicles, nil
}

// RemoveVehicle deletes one of the user's vehicles
func (s *vehicleService) RemoveVehicle(ctx context.Context, userID, vehicleID uuid.UUID) error {
	return s.vehicleRepo.Delete(ctx, userID, vehicleID)
}
