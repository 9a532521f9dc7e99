package service

import (
	"context"

	"gasradar/internal/domain/entity"
)

// FeedClient fetches the upstream fuel-price feed.
type FeedClient interface {
	// FetchSnapshot downloads every station in one request. Failures are errors.ErrFeedUnavailable.
	FetchSnapshot(ctx context.Context) (*entity.FeedSnapshot, error)
}

// StationConverter normalizes a raw feed record into a canonical station record.
type StationConverter interface {
	Convert(raw entity.RawStationRecord) *entity.StationRecord
}
