package repository

import (
	"context"

	"gasradar/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository reads users and manages their saved stations.
type UserRepository interface {
	// FindByID returns the user or errors.ErrUserNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// ListUsersWithSavedStations pages through users that saved at least one station.
	ListUsersWithSavedStations(ctx context.Context, offset, limit int) ([]*entity.UserWithStations, error)

	// SaveStation adds a station to the user's favourites. Saving twice is not an error.
	SaveStation(ctx context.Context, userID, stationID uuid.UUID) error

	// RemoveStation removes a station from the user's favourites.
	RemoveStation(ctx context.Context, userID, stationID uuid.UUID) error

	// ListSavedStationIDs returns the IDs of the user's favourite stations, most recent first.
	ListSavedStationIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// VehicleRepository manages user vehicles.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Vehicle, error)
	// Delete removes a vehicle owned by userID or returns errors.ErrVehicleNotFound.
	Delete(ctx context.Context, userID, vehicleID uuid.UUID) error
}
