// Package geocode resolves place names through a Nominatim server.
package geocode

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"gasradar/config"
	"gasradar/internal/domain/service"
	"gasradar/internal/errors"

	"github.com/muesli/gominatim"
)

const defaultServer = "https://nominatim.openstreetmap.org/"

// gominatim keeps its server in a package variable.
var serverMu sync.Mutex

type nominatimGeocoder struct {
	server string
}

// NewNominatimGeocoder creates a geocoder backed by the configured Nominatim server.
func NewNominatimGeocoder(cfg *config.Config) service.Geocoder {
	server := defaultServer
	if cfg.Geocoder != nil && cfg.Geocoder.Server != "" {
		server = cfg.Geocoder.Server
	}

	return &nominatimGeocoder{server: server}
}

// Search returns the best match for query. The lookup itself cannot be cancelled;
// ctx is checked before the request.
func (g *nominatimGeocoder) Search(ctx context.Context, query string) (*service.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("empty place query")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	qry := gominatim.SearchQuery{
		Q: query,
	}

	serverMu.Lock()
	gominatim.SetServer(g.server)
	results, err := qry.Get()
	serverMu.Unlock()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to geocode %q", query)
	}
	if len(results) == 0 {
		return nil, errors.Errorf("no place found for %q", query)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid latitude from geocoder")
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid longitude from geocoder")
	}

	return &service.Place{
		DisplayName: results[0].DisplayName,
		Latitude:    lat,
		Longitude:   lon,
	}, nil
}
