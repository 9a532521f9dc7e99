// Package usecase defines the application operations driven by the HTTP API, the push worker and the job scheduler.
package usecase

import (
	"context"
	"time"
)

// SyncReport tallies one reconciliation of the feed into the station store.
type SyncReport struct {
	FeedDate  string        `json:"feed_date"`
	Total     int           `json:"total"`
	Created   int           `json:"created"`
	Updated   int           `json:"updated"`
	Unchanged int           `json:"unchanged"`
	Skipped   int           `json:"skipped"`
	Failed    int           `json:"failed"`
	Duration  time.Duration `json:"duration"`
}

// StationSyncUsecase keeps the station store aligned with the upstream feed.
type StationSyncUsecase interface {
	// SyncStations fetches the feed and upserts every valid station. A fetch failure aborts the
	// cycle before any write; per-record failures are counted and skipped.
	SyncStations(ctx context.Context) (*SyncReport, error)
}
