// Package cache holds in-process caches.
package cache

import (
	"strconv"
	"strings"
	"time"

	"gasradar/config"
	"gasradar/internal/domain/entity"
	"gasradar/internal/domain/service"

	"github.com/mmcloughlin/geohash"
	gocache "github.com/patrickmn/go-cache"
)

// geohashPrecision 9 is a cell of roughly 5m x 5m. It prefixes keys so that
// searches around the same spot sort together when the cache is inspected.
const geohashPrecision = 9

type queryCache struct {
	store   *gocache.Cache
	enabled bool
}

// NewQueryCache creates the radius-search cache. A zero TTL disables it.
func NewQueryCache(cfg *config.Config) service.QueryCache {
	ttl := cfg.Query.CacheTTL
	if ttl <= 0 {
		return &queryCache{}
	}

	return &queryCache{
		store:   gocache.New(ttl, 2*ttl),
		enabled: true,
	}
}

func (c *queryCache) Key(query *entity.NearQuery) string {
	var sb strings.Builder
	sb.WriteString(geohash.EncodeWithPrecision(query.Latitude, query.Longitude, geohashPrecision))
	// Cached distances are only valid for the centre they were measured from.
	sb.WriteString("|c=")
	sb.WriteString(strconv.FormatFloat(query.Latitude, 'f', -1, 64))
	sb.WriteByte(',')
	sb.WriteString(strconv.FormatFloat(query.Longitude, 'f', -1, 64))
	sb.WriteString("|r=")
	sb.WriteString(strconv.FormatFloat(query.RadiusMeters, 'f', -1, 64))
	sb.WriteString("|b=")
	sb.WriteString(strings.ToUpper(strings.TrimSpace(query.Brand)))
	sb.WriteString("|m=")
	if query.MinRating != nil {
		sb.WriteString(strconv.FormatFloat(*query.MinRating, 'f', -1, 64))
	}

	return sb.String()
}

func (c *queryCache) Get(key string) (*service.CachedNearby, bool) {
	if !c.enabled {
		return nil, false
	}

	value, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	cached, ok := value.(*service.CachedNearby)

	return cached, ok
}

func (c *queryCache) Set(key string, value *service.CachedNearby) {
	if !c.enabled {
		return
	}
	if value.StoredAt.IsZero() {
		value.StoredAt = time.Now()
	}

	c.store.SetDefault(key, value)
}

func (c *queryCache) Flush() {
	if !c.enabled {
		return
	}

	c.store.Flush()
}
