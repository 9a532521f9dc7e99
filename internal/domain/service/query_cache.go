package service

import (
	"time"

	"gasradar/internal/domain/entity"
)

// CachedCandidate is a station found by a radius search together with its latest prices
// and the distance the store measured from the search centre.
type CachedCandidate struct {
	Station        *entity.Station
	Latest         *entity.PriceHistoryEntry
	DistanceMeters float64
}

// CachedNearby is the cached outcome of one radius search.
type CachedNearby struct {
	Candidates []*CachedCandidate
	StoredAt   time.Time
}

// QueryCache keeps recent radius-search results in memory.
type QueryCache interface {
	// Key identifies a radius search by its exact centre and filters.
	Key(query *entity.NearQuery) string
	Get(key string) (*CachedNearby, bool)
	Set(key string, value *CachedNearby)
	// Flush drops every cached search, e.g. after new prices were recorded.
	Flush()
}
