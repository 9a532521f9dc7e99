package cache

import (
	"testing"
	"time"

	"gasradar/config"
	"gasradar/internal/domain/entity"
	"gasradar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.Query.CacheTTL = ttl

	return cfg
}

func TestQueryCache_Key(t *testing.T) {
	t.Parallel()

	c := NewQueryCache(newConfig(time.Minute))
	rating := 4.0

	base := &entity.NearQuery{Latitude: 40.4168, Longitude: -3.7038, RadiusMeters: 1000, Brand: "repsol"}
	same := &entity.NearQuery{Latitude: 40.4168, Longitude: -3.7038, RadiusMeters: 1000, Brand: " REPSOL "}
	otherRadius := &entity.NearQuery{Latitude: 40.4168, Longitude: -3.7038, RadiusMeters: 2000, Brand: "repsol"}
	withRating := &entity.NearQuery{Latitude: 40.4168, Longitude: -3.7038, RadiusMeters: 1000, Brand: "repsol", MinRating: &rating}
	farAway := &entity.NearQuery{Latitude: 41.3874, Longitude: 2.1686, RadiusMeters: 1000, Brand: "repsol"}
	sameCell := &entity.NearQuery{Latitude: 40.41681, Longitude: -3.7038, RadiusMeters: 1000, Brand: "repsol"}

	assert.Equal(t, c.Key(base), c.Key(same))
	assert.NotEqual(t, c.Key(base), c.Key(otherRadius))
	assert.NotEqual(t, c.Key(base), c.Key(withRating))
	assert.NotEqual(t, c.Key(base), c.Key(farAway))
	assert.NotEqual(t, c.Key(base), c.Key(sameCell))
	assert.Equal(t, c.Key(base)[:9], c.Key(sameCell)[:9])
}

func TestQueryCache_GetSetFlush(t *testing.T) {
	t.Parallel()

	c := NewQueryCache(newConfig(time.Minute))
	value := &service.CachedNearby{
		Candidates: []*service.CachedCandidate{{Station: &entity.Station{IDEESS: "4375"}}},
	}

	_, ok := c.Get("k")
	assert.False(t, ok)

	c.Set("k", value)
	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "4375", got.Candidates[0].Station.IDEESS)
	assert.False(t, got.StoredAt.IsZero())

	c.Flush()
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestQueryCache_Disabled(t *testing.T) {
	t.Parallel()

	c := NewQueryCache(newConfig(0))
	c.Set("k", &service.CachedNearby{})

	_, ok := c.Get("k")
	assert.False(t, ok)
	c.Flush()
}
