package usecase

import (
	"context"
	"time"

	"gasradar/internal/domain/entity"
)

// RecordReport tallies one price recording cycle.
type RecordReport struct {
	FeedDate  string        `json:"feed_date"`
	Stations  int           `json:"stations"`
	Created   int           `json:"created"`
	Unchanged int           `json:"unchanged"`
	Missing   int           `json:"missing"`
	Failed    int           `json:"failed"`
	Duration  time.Duration `json:"duration"`
}

// PriceHistoryUsecase records and reads station price history.
type PriceHistoryUsecase interface {
	// RecordPrices appends the current feed prices of every known station when they changed.
	RecordPrices(ctx context.Context) (*RecordReport, error)

	// GetStationHistory returns the station's entries of the last days, oldest first.
	GetStationHistory(ctx context.Context, idEESS string, days int) ([]*entity.PriceHistoryEntry, error)
}
