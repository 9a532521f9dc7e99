package impl

import (
	"io"
	"log/slog"
	"time"

	"gasradar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func ptr[T any](v T) *T {
	return &v
}

func testStation(idEESS string, lat, lon float64) *entity.Station {
	return &entity.Station{
		ID:        uuid.New(),
		IDEESS:    idEESS,
		Latitude:  lat,
		Longitude: lon,
		Location:  orb.Point{lon, lat},
		Brand:     "REPSOL",
		Address:   "CALLE MAYOR, 1",
		Schedule:  "L-D: 24H",
	}
}

func testRecord(idEESS string, lat, lon float64, prices entity.Prices) *entity.StationRecord {
	return &entity.StationRecord{
		Station: *testStation(idEESS, lat, lon),
		Prices:  prices,
	}
}

func pricesOf(values map[entity.FuelType]float64) entity.Prices {
	prices := entity.NewEmptyPrices()
	for fuel, v := range values {
		prices[fuel] = ptr(v)
	}

	return prices
}
