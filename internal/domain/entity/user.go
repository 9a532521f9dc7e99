package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account owned by the external auth service. This service only reads it.
type User struct {
	ID                   uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email                string    // Contact email.
	Name                 string    // Display name.
	NotificationsEnabled bool      // Whether low-price alerts are pushed to devices. The inbox entry is always written.
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// SavedStation links a user to one of their favourite stations.
type SavedStation struct {
	UserID    uuid.UUID
	StationID uuid.UUID
	CreatedAt time.Time
}

// UserWithStations is a user together with the IDs of the stations they saved.
type UserWithStations struct {
	User       *User
	StationIDs []uuid.UUID
}

// Vehicle is a user's vehicle. Its fuel type drives low-price alert preferences.
type Vehicle struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	FuelType  FuelType  `json:"fuel_type"`
	CreatedAt time.Time `json:"created_at"`
}

// FuelPreferences returns the distinct fuel types of vehicles, or the defaults when there are none.
func FuelPreferences(vehicles []*Vehicle) []FuelType {
	seen := make(map[FuelType]struct{}, len(vehicles))
	prefs := make([]FuelType, 0, len(vehicles))
	for _, v := range vehicles {
		if v == nil || !v.FuelType.IsValid() {
			continue
		}
		if _, ok := seen[v.FuelType]; ok {
			continue
		}
		seen[v.FuelType] = struct{}{}
		prefs = append(prefs, v.FuelType)
	}

	if len(prefs) == 0 {
		return append([]FuelType(nil), DefaultFuelPreferences...)
	}

	return prefs
}
