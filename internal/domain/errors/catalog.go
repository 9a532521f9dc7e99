package errors

import "net/http"

// Feed
var (
	ErrFeedUnavailable = NewBaseError(http.StatusBadGateway, "FEED_UNAVAILABLE", "Fuel price feed is unavailable", "")

	// ErrConversionSkipped marks a feed record that could not be paired with a
	// local station. Jobs log it; it never reaches a client.
	ErrConversionSkipped = NewBaseError(http.StatusUnprocessableEntity, "CONVERSION_SKIPPED", "Feed record skipped", "")
)

// Stations
var (
	ErrStationNotFound      = NewBaseError(http.StatusNotFound, "STATION_NOT_FOUND", "Station not found", "")
	ErrPriceHistoryNotFound = NewBaseError(http.StatusNotFound, "PRICE_HISTORY_NOT_FOUND", "No price history for this station", "")
	ErrReviewAlreadyExists  = NewBaseError(http.StatusConflict, "REVIEW_ALREADY_EXISTS", "You have already reviewed this station", "")
)

// Users and their devices
var (
	ErrUserNotFound         = NewBaseError(http.StatusNotFound, "USER_NOT_FOUND", "User not found", "")
	ErrVehicleNotFound      = NewBaseError(http.StatusNotFound, "VEHICLE_NOT_FOUND", "Vehicle not found", "")
	ErrDeviceNotFound       = NewBaseError(http.StatusNotFound, "DEVICE_NOT_FOUND", "Device not found", "")
	ErrNotificationNotFound = NewBaseError(http.StatusNotFound, "NOTIFICATION_NOT_FOUND", "Notification not found", "")
	ErrUnauthorized         = NewBaseError(http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token", "")
)

// Persistence. The push worker answers 503 for these so Pub/Sub redelivers.
var (
	ErrStoreUnavailable  = NewBaseError(http.StatusInternalServerError, "STORE_UNAVAILABLE", "Storage is temporarily unavailable", "")
	ErrTransactionFailed = NewBaseError(http.StatusInternalServerError, "TRANSACTION_FAILED", "Database transaction failed", "")
)

// Generic
var (
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Input validation failed", "")
	ErrInternalError    = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", "")
	ErrForbidden        = NewBaseError(http.StatusForbidden, "FORBIDDEN", "Access denied", "")
	ErrNotFound         = NewBaseError(http.StatusNotFound, "NOT_FOUND", "Resource not found", "")
	ErrConflict         = NewBaseError(http.StatusConflict, "CONFLICT", "Resource conflict", "")
)
