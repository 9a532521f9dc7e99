package usecase

import (
	"context"
	"time"

	"gasradar/internal/domain/entity"
)

// NearbyQuery is a radius search around a point.
type NearbyQuery struct {
	Latitude     float64
	Longitude    float64
	RadiusKm     float64             // Zero means the configured default.
	Limit        int                 // Zero means no cap.
	FuelType     entity.FuelType     // Optional.
	Brand        string              // Optional, case-insensitive.
	MinRating    *float64            // Optional, 0..5.
	Availability entity.Availability // Empty means all.
}

// NearbyStation is one annotated search result.
type NearbyStation struct {
	ID           string        `json:"id"`
	IDEESS       string        `json:"id_eess"`
	Brand        string        `json:"brand"`
	Address      string        `json:"address"`
	City         string        `json:"city"`
	Municipality string        `json:"municipality"`
	Province     string        `json:"province"`
	ZipCode      string        `json:"zip_code"`
	Schedule     string        `json:"schedule"`
	Latitude     float64       `json:"latitude"`
	Longitude    float64       `json:"longitude"`
	Distance     float64       `json:"distance"` // Kilometres, two decimals.
	Rating       float64       `json:"rating"`
	TotalRatings int           `json:"total_ratings"`
	IsOpen       *bool         `json:"is_open"` // Nil when the schedule cannot be read.
	FuelType     string        `json:"fuel_type,omitempty"`
	Price        *float64      `json:"price,omitempty"`  // Set when the query named a fuel type.
	Prices       entity.Prices `json:"prices,omitempty"` // Set otherwise.
	PricesAt     time.Time     `json:"prices_at"`
}

// StationDetail is a station with its latest prices and rating aggregate.
type StationDetail struct {
	Station  *entity.Station      `json:"station"`
	Prices   entity.Prices        `json:"prices"`
	PricesAt *time.Time           `json:"prices_at"`
	Reviews  entity.ReviewSummary `json:"reviews"`
	IsOpen   *bool                `json:"is_open"`
}

// StationQueryUsecase answers station searches.
type StationQueryUsecase interface {
	// FindNearby returns stations with tracked prices inside the radius, nearest first.
	FindNearby(ctx context.Context, query *NearbyQuery) ([]*NearbyStation, error)

	// GetStation returns the detail view of one station.
	GetStation(ctx context.Context, idEESS string) (*StationDetail, error)
}
