package service

import "context"

// Place is a geocoded location.
type Place struct {
	DisplayName string
	Latitude    float64
	Longitude   float64
}

// Geocoder resolves free-text place names.
type Geocoder interface {
	Search(ctx context.Context, query string) (*Place, error)
}
