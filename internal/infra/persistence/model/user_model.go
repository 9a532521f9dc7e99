package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Rows are written by the auth service.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email                string    `gorm:"type:varchar(255);unique;not null"`
	Name                 string    `gorm:"type:varchar(100)"`
	NotificationsEnabled bool      `gorm:"not null;default:true"`
	CreatedAt            time.Time
	UpdatedAt            time.Time

	SavedStations []SavedStationModel `gorm:"foreignKey:UserID"`
	Vehicles      []VehicleModel      `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// SavedStationModel mirrors the 'saved_stations' join table.
type SavedStationModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	StationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SavedStationModel) TableName() string {
	return "saved_stations"
}

// VehicleModel mirrors the 'vehicles' table.
type VehicleModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Brand     string    `gorm:"type:varchar(100);not null;default:''"`
	Model     string    `gorm:"type:varchar(100);not null;default:''"`
	FuelType  string    `gorm:"type:varchar(32);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleModel) TableName() string {
	return "vehicles"
}
