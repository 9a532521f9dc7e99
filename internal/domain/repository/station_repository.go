package repository

import (
	"context"

	"gasradar/internal/domain/entity"

	"github.com/google/uuid"
)

// StationRepository is the station store: stations keyed by IDEESS with a geospatial index.
type StationRepository interface {
	// FindByExternalID returns the station with the given IDEESS or errors.ErrStationNotFound.
	FindByExternalID(ctx context.Context, idEESS string) (*entity.Station, error)

	// FindByID returns the station with the given internal ID or errors.ErrStationNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Station, error)

	// FindByIDs returns the stations found among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Station, error)

	// ListAll returns every known station.
	ListAll(ctx context.Context) ([]*entity.Station, error)

	// Upsert inserts the record when its IDEESS is unknown, overwrites it when a comparable field
	// changed and otherwise leaves it untouched. It is atomic per station.
	Upsert(ctx context.Context, record *entity.StationRecord) (entity.UpsertOutcome, error)

	// FindNear returns stations within the query radius ordered by ascending distance.
	FindNear(ctx context.Context, query *entity.NearQuery) ([]*entity.StationDistance, error)

	// UpdateReviewSummary stores a recomputed rating aggregate.
	UpdateReviewSummary(ctx context.Context, stationID uuid.UUID, summary *entity.ReviewSummary) error
}

// ReviewRepository stores station reviews.
type ReviewRepository interface {
	// Create inserts a review. A second review of the same station by the same user is
	// errors.ErrReviewAlreadyExists.
	Create(ctx context.Context, review *entity.Review) error

	// Summarize computes the rating aggregate of a station from its reviews.
	Summarize(ctx context.Context, stationID uuid.UUID) (*entity.ReviewSummary, error)

	// ListByStation returns a station's reviews, newest first.
	ListByStation(ctx context.Context, stationID uuid.UUID) ([]*entity.Review, error)
}
