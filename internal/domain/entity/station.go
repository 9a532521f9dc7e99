// Package entity contains the core business objects of the project.
package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// RawStationRecord is one station as delivered by the upstream feed, keyed by the feed's field names.
type RawStationRecord map[string]any

// FeedSnapshot is one full fetch of the upstream feed.
type FeedSnapshot struct {
	Date    string             // Feed generation date as published upstream ("Fecha").
	Records []RawStationRecord // One entry per station.
}

// Station is a real-world fuel station identified by its external IDEESS.
type Station struct {
	ID             uuid.UUID // Internal identifier.
	IDEESS         string    // Stable external identifier from the feed.
	Latitude       float64   // WGS84 latitude.
	Longitude      float64   // WGS84 longitude.
	Location       orb.Point // Same position in [lon, lat] order.
	Address        string
	ZipCode        string
	City           string
	Municipality   string
	Province       string
	Schedule       string // Compact weekly opening hours, e.g. "L-V: 07:00-22:00; S-D: 08:00-15:00".
	Brand          string
	IDMunicipality string
	IDProvince     string
	IDCCAA         string
	SellingType    string // "P" public or "R" restricted.
	Remission      string
	Margin         string
	BioEthanolPct  string
	MethylEsterPct string
	Reviews        ReviewSummary // Aggregate of user ratings.
	LastSeenAt     time.Time     // Last time the station appeared in a feed snapshot.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StationRecord is the canonical form of a feed record: station attributes plus its current prices.
type StationRecord struct {
	Station
	Prices Prices
}

// HasValidLocation reports whether the record carries usable coordinates.
func (r *StationRecord) HasValidLocation() bool {
	return r.Location != (orb.Point{}) &&
		r.Latitude >= -90 && r.Latitude <= 90 &&
		r.Longitude >= -180 && r.Longitude <= 180
}

// UpsertOutcome reports what a station upsert did.
type UpsertOutcome int

const (
	UpsertUnchanged UpsertOutcome = iota
	UpsertCreated
	UpsertUpdated
)

func (o UpsertOutcome) String() string {
	switch o {
	case UpsertCreated:
		return "created"
	case UpsertUpdated:
		return "updated"
	default:
		return "unchanged"
	}
}

// ComparableField names one tracked station attribute and how to read it for comparison.
type ComparableField struct {
	Name  string
	Value func(*Station) string
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// StationComparableFields are the attributes whose change triggers an overwrite on sync.
// Values are compared as strings.
var StationComparableFields = []ComparableField{
	{Name: "latitude", Value: func(s *Station) string { return formatCoordinate(s.Latitude) }},
	{Name: "longitude", Value: func(s *Station) string { return formatCoordinate(s.Longitude) }},
	{Name: "address", Value: func(s *Station) string { return s.Address }},
	{Name: "zipCode", Value: func(s *Station) string { return s.ZipCode }},
	{Name: "city", Value: func(s *Station) string { return s.City }},
	{Name: "municipality", Value: func(s *Station) string { return s.Municipality }},
	{Name: "province", Value: func(s *Station) string { return s.Province }},
	{Name: "schedule", Value: func(s *Station) string { return s.Schedule }},
	{Name: "brand", Value: func(s *Station) string { return s.Brand }},
	{Name: "idMunicipality", Value: func(s *Station) string { return s.IDMunicipality }},
	{Name: "idProvince", Value: func(s *Station) string { return s.IDProvince }},
	{Name: "idCCAA", Value: func(s *Station) string { return s.IDCCAA }},
	{Name: "sellingType", Value: func(s *Station) string { return s.SellingType }},
	{Name: "remission", Value: func(s *Station) string { return s.Remission }},
	{Name: "margin", Value: func(s *Station) string { return s.Margin }},
	{Name: "bioEthanolPct", Value: func(s *Station) string { return s.BioEthanolPct }},
	{Name: "methylEsterPct", Value: func(s *Station) string { return s.MethylEsterPct }},
}

// ChangedFields returns the names of comparable fields that differ between current and incoming.
func ChangedFields(current, incoming *Station) []string {
	var changed []string
	for _, field := range StationComparableFields {
		if field.Value(current) != field.Value(incoming) {
			changed = append(changed, field.Name)
		}
	}

	return changed
}

// NearQuery describes a radius search pushed down to the station store.
type NearQuery struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	Brand        string   // Optional, matched case-insensitively.
	MinRating    *float64 // Optional lower bound on the review score.
	Limit        int      // Zero means no cap.
}

// StationDistance pairs a station with its distance from the query centre.
type StationDistance struct {
	Station        *Station
	DistanceMeters float64
}
