package repository

import (
	"context"

	"gasradar/internal/domain/entity"

	"github.com/google/uuid"
)

// PriceHistoryRepository is the append-only, change-gated price log.
type PriceHistoryRepository interface {
	// Latest returns the most recent entry of a station or errors.ErrPriceHistoryNotFound.
	Latest(ctx context.Context, stationID uuid.UUID) (*entity.PriceHistoryEntry, error)

	// LatestForStations returns the most recent entry of each station that has one.
	LatestForStations(ctx context.Context, stationIDs []uuid.UUID) (map[uuid.UUID]*entity.PriceHistoryEntry, error)

	// Recent returns entries of a station inside the given range.
	Recent(ctx context.Context, stationID uuid.UUID, rng entity.HistoryRange) ([]*entity.PriceHistoryEntry, error)

	// AppendIfChanged stores prices as a new entry unless they equal the latest entry.
	// It reports whether an entry was created.
	AppendIfChanged(ctx context.Context, stationID uuid.UUID, prices entity.Prices) (bool, error)
}
