package postgres

import (
	"context"

	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/domain/repository"
	"gasradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// priceHistoryRepository implements the repository.PriceHistoryRepository interface.
type priceHistoryRepository struct {
	db *gorm.DB
}

// NewPriceHistoryRepository is the constructor for priceHistoryRepository.
func NewPriceHistoryRepository(db *gorm.DB) repository.PriceHistoryRepository {
	return &priceHistoryRepository{
		db: db,
	}
}

// Latest retrieves the newest entry of a station.
func (repo *priceHistoryRepository) Latest(ctx context.Context, stationID uuid.UUID) (*entity.PriceHistoryEntry, error) {
	entry, err := latestEntry(repo.db.WithContext(ctx), stationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrPriceHistoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest price history entry")
	}

	return toPriceHistoryDomain(entry), nil
}

// LatestForStations retrieves the newest entry of every given station in one query.
func (repo *priceHistoryRepository) LatestForStations(ctx context.Context, stationIDs []uuid.UUID) (map[uuid.UUID]*entity.PriceHistoryEntry, error) {
	result := make(map[uuid.UUID]*entity.PriceHistoryEntry, len(stationIDs))
	if len(stationIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT DISTINCT ON (station_id) id, station_id, prices, created_at
		FROM price_history
		WHERE station_id IN ?
		ORDER BY station_id, created_at DESC
	`

	var entries []*model.PriceHistoryModel
	if err := repo.db.WithContext(ctx).
		Raw(query, stationIDs).
		Scan(&entries).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find latest price history entries")
	}

	for _, entryM := range entries {
		result[entryM.StationID] = toPriceHistoryDomain(entryM)
	}

	return result, nil
}

// Recent retrieves the entries of a station inside rng.
func (repo *priceHistoryRepository) Recent(ctx context.Context, stationID uuid.UUID, rng entity.HistoryRange) ([]*entity.PriceHistoryEntry, error) {
	query := repo.db.WithContext(ctx).Where("station_id = ?", stationID)

	if !rng.Since.IsZero() {
		query = query.Where("created_at >= ?", rng.Since)
	}
	if rng.Order == entity.OldestFirst {
		query = query.Order("created_at ASC")
	} else {
		query = query.Order("created_at DESC")
	}
	if rng.Limit > 0 {
		query = query.Limit(rng.Limit)
	}

	var entries []*model.PriceHistoryModel
	if err := query.Find(&entries).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find recent price history")
	}

	result := make([]*entity.PriceHistoryEntry, 0, len(entries))
	for _, entryM := range entries {
		result = append(result, toPriceHistoryDomain(entryM))
	}

	return result, nil
}

// AppendIfChanged inserts prices as a new entry unless they equal the latest one.
// The station row lock serializes concurrent appends for the same station.
func (repo *priceHistoryRepository) AppendIfChanged(ctx context.Context, stationID uuid.UUID, prices entity.Prices) (bool, error) {
	created := false

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var station model.StationModel
		if err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
			Select("id").
			Where("id = ?", stationID).
			First(&station).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrStationNotFound
			}

			return err
		}

		latest, err := latestEntry(tx, stationID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if latest != nil && toPrices(latest.Prices.Data()).Equal(prices) {
			return nil
		}

		entryM := &model.PriceHistoryModel{
			StationID: stationID,
			Prices:    datatypes.NewJSONType(fromPrices(prices)),
		}
		if err := tx.Create(entryM).Error; err != nil {
			return err
		}
		created = true

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrStationNotFound) {
			return false, err
		}

		return false, domainerrors.NewDatabaseExecuteError(err, "failed to append price history")
	}

	return created, nil
}

func latestEntry(db *gorm.DB, stationID uuid.UUID) (*model.PriceHistoryModel, error) {
	var entryM model.PriceHistoryModel
	if err := db.
		Where("station_id = ?", stationID).
		Order("created_at DESC").
		First(&entryM).Error; err != nil {
		return nil, err
	}

	return &entryM, nil
}

// --- Mapper Functions ---

func toPriceHistoryDomain(data *model.PriceHistoryModel) *entity.PriceHistoryEntry {
	if data == nil {
		return nil
	}

	return &entity.PriceHistoryEntry{
		ID:        data.ID,
		StationID: data.StationID,
		Prices:    toPrices(data.Prices.Data()),
		CreatedAt: data.CreatedAt,
	}
}

// toPrices keeps only known fuel types and fills the missing ones with nil.
func toPrices(raw map[string]*float64) entity.Prices {
	prices := entity.NewEmptyPrices()
	for key, value := range raw {
		if f := entity.FuelType(key); f.IsValid() {
			prices[f] = value
		}
	}

	return prices
}

func fromPrices(prices entity.Prices) map[string]*float64 {
	raw := make(map[string]*float64, len(entity.AllFuelTypes))
	for _, f := range entity.AllFuelTypes {
		raw[string(f)] = prices.Get(f)
	}

	return raw
}
