// Package model holds the GORM rows behind the postgres repositories.
// The schema itself is owned by the goose migrations.
package model

// All lists every table-backed model, in migration order.
func All() []any {
	return []any{
		StationModel{},
		PriceHistoryModel{},
		StationReviewModel{},
		UserModel{},
		SavedStationModel{},
		VehicleModel{},
		UserDeviceModel{},
		NotificationModel{},
		NotificationLogModel{},
	}
}
