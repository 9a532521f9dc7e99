package postgres

import (
	"context"
	"strings"
	"time"

	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/domain/repository"
	"gasradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// stationColumns excludes the generated location and brand_normalized columns.
const stationColumns = `s.id, s.id_eess, s.latitude, s.longitude, s.address, s.zip_code, s.city,
	s.municipality, s.province, s.schedule, s.brand, s.id_municipality, s.id_province, s.id_ccaa,
	s.selling_type, s.remission, s.margin, s.bio_ethanol_pct, s.methyl_ester_pct,
	s.scoring, s.total_ratings, s.last_seen_at, s.created_at, s.updated_at`

// stationRepository implements the repository.StationRepository interface.
type stationRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewStationRepository is the constructor for stationRepository.
func NewStationRepository(db *gorm.DB) repository.StationRepository {
	return &stationRepository{
		db:  db,
		now: time.Now,
	}
}

// FindByExternalID retrieves a station by its IDEESS.
func (repo *stationRepository) FindByExternalID(ctx context.Context, idEESS string) (*entity.Station, error) {
	var stationM model.StationModel

	if err := repo.db.WithContext(ctx).
		Where("id_eess = ?", idEESS).
		First(&stationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrStationNotFound
		}

		return nil, errors.Wrap(err, "failed to find station by IDEESS")
	}

	return toStationDomain(&stationM), nil
}

// FindByID retrieves a station by its internal ID.
func (repo *stationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Station, error) {
	var stationM model.StationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&stationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrStationNotFound
		}

		return nil, errors.Wrap(err, "failed to find station by ID")
	}

	return toStationDomain(&stationM), nil
}

// FindByIDs retrieves the stations among ids that exist.
func (repo *stationRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Station, error) {
	if len(ids) == 0 {
		return []*entity.Station{}, nil
	}

	var stationModels []*model.StationModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&stationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stations by IDs")
	}

	return toStationsDomain(stationModels), nil
}

// ListAll retrieves every station ordered by IDEESS.
func (repo *stationRepository) ListAll(ctx context.Context) ([]*entity.Station, error) {
	var stationModels []*model.StationModel

	if err := repo.db.WithContext(ctx).
		Order("id_eess").
		Find(&stationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stations")
	}

	return toStationsDomain(stationModels), nil
}

// Upsert reconciles one feed record with the stored station.
// A unique violation means another writer inserted the same IDEESS first; the second
// attempt then sees that row and compares against it.
func (repo *stationRepository) Upsert(ctx context.Context, record *entity.StationRecord) (entity.UpsertOutcome, error) {
	outcome, err := repo.upsertOnce(ctx, record)
	if err != nil && isUniqueConstraintViolation(err) {
		outcome, err = repo.upsertOnce(ctx, record)
	}
	if err != nil {
		return entity.UpsertUnchanged, domainerrors.NewDatabaseExecuteError(err, "failed to upsert station "+record.IDEESS)
	}

	return outcome, nil
}

func (repo *stationRepository) upsertOnce(ctx context.Context, record *entity.StationRecord) (entity.UpsertOutcome, error) {
	outcome := entity.UpsertUnchanged
	now := repo.now()

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current model.StationModel
		err := tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
			Where("id_eess = ?", record.IDEESS).
			First(&current).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			stationM := fromStationDomain(&record.Station)
			stationM.ID = uuid.Nil
			stationM.LastSeenAt = now
			if err := tx.Create(stationM).Error; err != nil {
				return err
			}

			record.ID = stationM.ID
			record.CreatedAt = stationM.CreatedAt
			record.UpdatedAt = stationM.UpdatedAt
			record.LastSeenAt = now
			outcome = entity.UpsertCreated

			return nil
		}
		if err != nil {
			return err
		}

		record.ID = current.ID
		record.CreatedAt = current.CreatedAt
		record.LastSeenAt = now

		if len(entity.ChangedFields(toStationDomain(&current), &record.Station)) == 0 {
			record.UpdatedAt = current.UpdatedAt

			return tx.Model(&model.StationModel{}).
				Where("id = ?", current.ID).
				UpdateColumn("last_seen_at", now).Error
		}

		if err := tx.Model(&model.StationModel{}).
			Where("id = ?", current.ID).
			UpdateColumns(stationAttributeColumns(&record.Station, now)).Error; err != nil {
			return err
		}

		record.UpdatedAt = now
		outcome = entity.UpsertUpdated

		return nil
	})

	return outcome, err
}

// stationAttributeColumns lists every feed-owned column, zero values included.
func stationAttributeColumns(s *entity.Station, now time.Time) map[string]any {
	return map[string]any{
		"latitude":         s.Latitude,
		"longitude":        s.Longitude,
		"address":          s.Address,
		"zip_code":         s.ZipCode,
		"city":             s.City,
		"municipality":     s.Municipality,
		"province":         s.Province,
		"schedule":         s.Schedule,
		"brand":            s.Brand,
		"id_municipality":  s.IDMunicipality,
		"id_province":      s.IDProvince,
		"id_ccaa":          s.IDCCAA,
		"selling_type":     s.SellingType,
		"remission":        s.Remission,
		"margin":           s.Margin,
		"bio_ethanol_pct":  s.BioEthanolPct,
		"methyl_ester_pct": s.MethylEsterPct,
		"last_seen_at":     now,
		"updated_at":       now,
	}
}

// FindNear runs the radius search with PostGIS ST_DWithin on the geography index.
func (repo *stationRepository) FindNear(ctx context.Context, query *entity.NearQuery) ([]*entity.StationDistance, error) {
	var sb strings.Builder
	args := []any{query.Longitude, query.Latitude, query.Longitude, query.Latitude, query.RadiusMeters}

	sb.WriteString(`
		SELECT ` + stationColumns + `,
		       ST_Distance(s.location, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography) AS distance_meters
		FROM stations s
		WHERE ST_DWithin(s.location, ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography, ?)`)

	if brand := strings.TrimSpace(query.Brand); brand != "" {
		sb.WriteString(` AND s.brand_normalized = UPPER(?)`)
		args = append(args, brand)
	}
	if query.MinRating != nil {
		sb.WriteString(` AND s.scoring >= ?`)
		args = append(args, *query.MinRating)
	}

	sb.WriteString(` ORDER BY distance_meters ASC, s.id_eess ASC`)
	if query.Limit > 0 {
		sb.WriteString(` LIMIT ?`)
		args = append(args, query.Limit)
	}

	var rows []*model.StationDistanceModel
	if err := repo.db.WithContext(ctx).
		Raw(sb.String(), args...).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stations within radius")
	}

	result := make([]*entity.StationDistance, 0, len(rows))
	for _, row := range rows {
		result = append(result, &entity.StationDistance{
			Station:        toStationDomain(&row.StationModel),
			DistanceMeters: row.DistanceMeters,
		})
	}

	return result, nil
}

// UpdateReviewSummary stores the recomputed rating aggregate of a station.
func (repo *stationRepository) UpdateReviewSummary(ctx context.Context, stationID uuid.UUID, summary *entity.ReviewSummary) error {
	result := repo.db.WithContext(ctx).
		Model(&model.StationModel{}).
		Where("id = ?", stationID).
		UpdateColumns(map[string]any{
			"scoring":       summary.Scoring,
			"total_ratings": summary.TotalRatings,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review summary")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrStationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toStationsDomain(models []*model.StationModel) []*entity.Station {
	stations := make([]*entity.Station, 0, len(models))
	for _, stationM := range models {
		stations = append(stations, toStationDomain(stationM))
	}

	return stations
}

// toStationDomain converts a GORM StationModel to a domain Station entity.
func toStationDomain(data *model.StationModel) *entity.Station {
	if data == nil {
		return nil
	}

	return &entity.Station{
		ID:             data.ID,
		IDEESS:         data.IDEESS,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Location:       orb.Point{data.Longitude, data.Latitude},
		Address:        data.Address,
		ZipCode:        data.ZipCode,
		City:           data.City,
		Municipality:   data.Municipality,
		Province:       data.Province,
		Schedule:       data.Schedule,
		Brand:          data.Brand,
		IDMunicipality: data.IDMunicipality,
		IDProvince:     data.IDProvince,
		IDCCAA:         data.IDCCAA,
		SellingType:    data.SellingType,
		Remission:      data.Remission,
		Margin:         data.Margin,
		BioEthanolPct:  data.BioEthanolPct,
		MethylEsterPct: data.MethylEsterPct,
		Reviews: entity.ReviewSummary{
			Scoring:      data.Scoring,
			TotalRatings: data.TotalRatings,
		},
		LastSeenAt: data.LastSeenAt,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromStationDomain converts a domain Station entity to a GORM StationModel.
func fromStationDomain(data *entity.Station) *model.StationModel {
	if data == nil {
		return nil
	}

	return &model.StationModel{
		ID:             data.ID,
		IDEESS:         data.IDEESS,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Address:        data.Address,
		ZipCode:        data.ZipCode,
		City:           data.City,
		Municipality:   data.Municipality,
		Province:       data.Province,
		Schedule:       data.Schedule,
		Brand:          data.Brand,
		IDMunicipality: data.IDMunicipality,
		IDProvince:     data.IDProvince,
		IDCCAA:         data.IDCCAA,
		SellingType:    data.SellingType,
		Remission:      data.Remission,
		Margin:         data.Margin,
		BioEthanolPct:  data.BioEthanolPct,
		MethylEsterPct: data.MethylEsterPct,
		Scoring:        data.Reviews.Scoring,
		TotalRatings:   data.Reviews.TotalRatings,
		LastSeenAt:     data.LastSeenAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
