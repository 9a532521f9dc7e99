package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StationModel mirrors the 'stations' table.
// The location geography column and brand_normalized are generated by PostgreSQL from
// latitude/longitude and brand, so they are not mapped here. Geospatial reads use raw SQL.
type StationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	IDEESS         string    `gorm:"column:id_eess;type:varchar(32);uniqueIndex;not null"`
	Latitude       float64   `gorm:"type:double precision;not null"`
	Longitude      float64   `gorm:"type:double precision;not null"`
	Address        string    `gorm:"type:text;not null;default:''"`
	ZipCode        string    `gorm:"type:varchar(16);not null;default:''"`
	City           string    `gorm:"type:text;not null;default:''"`
	Municipality   string    `gorm:"type:text;not null;default:''"`
	Province       string    `gorm:"type:text;not null;default:''"`
	Schedule       string    `gorm:"type:text;not null;default:''"`
	Brand          string    `gorm:"type:text;not null;default:''"`
	IDMunicipality string    `gorm:"column:id_municipality;type:varchar(16);not null;default:''"`
	IDProvince     string    `gorm:"column:id_province;type:varchar(16);not null;default:''"`
	IDCCAA         string    `gorm:"column:id_ccaa;type:varchar(16);not null;default:''"`
	SellingType    string    `gorm:"type:varchar(8);not null;default:''"`
	Remission      string    `gorm:"type:varchar(8);not null;default:''"`
	Margin         string    `gorm:"type:varchar(8);not null;default:''"`
	BioEthanolPct  string    `gorm:"type:varchar(16);not null;default:''"`
	MethylEsterPct string    `gorm:"type:varchar(16);not null;default:''"`
	Scoring        float64   `gorm:"type:double precision;not null;default:0"`
	TotalRatings   int       `gorm:"not null;default:0"`
	LastSeenAt     time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (StationModel) TableName() string {
	return "stations"
}

// StationDistanceModel is a station row plus the distance computed by a radius query.
type StationDistanceModel struct {
	StationModel
	DistanceMeters float64 `gorm:"column:distance_meters"`
}

// PriceHistoryModel mirrors the 'price_history' table. Rows are never updated.
type PriceHistoryModel struct {
	ID        uuid.UUID                                `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	StationID uuid.UUID                                `gorm:"type:uuid;not null;index:idx_price_history_station_created,priority:1"`
	Prices    datatypes.JSONType[map[string]*float64] `gorm:"type:jsonb;not null"`
	CreatedAt time.Time                                `gorm:"index:idx_price_history_station_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (PriceHistoryModel) TableName() string {
	return "price_history"
}

// StationReviewModel mirrors the 'station_reviews' table.
type StationReviewModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	StationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_station_reviews_station_user,priority:1"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_station_reviews_station_user,priority:2"`
	Rating    int       `gorm:"not null"`
	Comment   string    `gorm:"type:text;not null;default:''"`
	Likes     int       `gorm:"not null;default:0"`
	Dislikes  int       `gorm:"not null;default:0"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StationReviewModel) TableName() string {
	return "station_reviews"
}
