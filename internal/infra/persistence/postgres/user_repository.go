package postgres

import (
	"context"

	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/domain/repository"
	"gasradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// ListUsersWithSavedStations pages through users that saved at least one station,
// preloading their saved stations.
func (repo *userRepository) ListUsersWithSavedStations(ctx context.Context, offset, limit int) ([]*entity.UserWithStations, error) {
	var userModels []*model.UserModel

	query := repo.db.WithContext(ctx).
		Preload("SavedStations", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Where("EXISTS (SELECT 1 FROM saved_stations ss WHERE ss.user_id = users.id)").
		Order("users.id")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users with saved stations")
	}

	result := make([]*entity.UserWithStations, 0, len(userModels))
	for _, userM := range userModels {
		stationIDs := make([]uuid.UUID, 0, len(userM.SavedStations))
		for _, saved := range userM.SavedStations {
			stationIDs = append(stationIDs, saved.StationID)
		}

		result = append(result, &entity.UserWithStations{
			User:       toUserDomain(userM),
			StationIDs: stationIDs,
		})
	}

	return result, nil
}

// SaveStation adds a station to the user's favourites. An existing pair is left as is.
func (repo *userRepository) SaveStation(ctx context.Context, userID, stationID uuid.UUID) error {
	saved := &model.SavedStationModel{
		UserID:    userID,
		StationID: stationID,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(saved).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotFound.WrapMessage("unknown user or station")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save station")
	}

	return nil
}

// RemoveStation removes a station from the user's favourites.
func (repo *userRepository) RemoveStation(ctx context.Context, userID, stationID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND station_id = ?", userID, stationID).
		Delete(&model.SavedStationModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove saved station")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrStationNotFound
	}

	return nil
}

// ListSavedStationIDs retrieves the IDs of the user's favourite stations, most recent first.
func (repo *userRepository) ListSavedStationIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.SavedStationModel{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("station_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list saved stations")
	}

	return ids, nil
}

// vehicleRepository implements the repository.VehicleRepository interface.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository is the constructor for vehicleRepository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{
		db: db,
	}
}

// Create persists a new vehicle.
func (repo *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	vehicleM := &model.VehicleModel{
		UserID:   vehicle.UserID,
		Brand:    vehicle.Brand,
		Model:    vehicle.Model,
		FuelType: string(vehicle.FuelType),
	}

	if err := repo.db.WithContext(ctx).Create(vehicleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vehicle")
	}

	vehicle.ID = vehicleM.ID
	vehicle.CreatedAt = vehicleM.CreatedAt

	return nil
}

// ListByUser retrieves a user's vehicles in registration order.
func (repo *vehicleRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Vehicle, error) {
	var vehicleModels []*model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&vehicleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vehicles")
	}

	vehicles := make([]*entity.Vehicle, 0, len(vehicleModels))
	for _, vehicleM := range vehicleModels {
		vehicles = append(vehicles, &entity.Vehicle{
			ID:        vehicleM.ID,
			UserID:    vehicleM.UserID,
			Brand:     vehicleM.Brand,
			Model:     vehicleM.Model,
			FuelType:  entity.FuelType(vehicleM.FuelType),
			CreatedAt: vehicleM.CreatedAt,
		})
	}

	return vehicles, nil
}

// Delete removes a vehicle owned by the user.
func (repo *vehicleRepository) Delete(ctx context.Context, userID, vehicleID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", vehicleID, userID).
		Delete(&model.VehicleModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete vehicle")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrVehicleNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                   data.ID,
		Email:                data.Email,
		Name:                 data.Name,
		NotificationsEnabled: data.NotificationsEnabled,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}
