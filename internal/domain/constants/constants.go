// Package constants holds values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers selectable through config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// PubSub message attributes.
const (
	AttrRequestID = "request_id"
	AttrEventType = "event_type"
)

// EventTypePriceAlert identifies low-price alert events on the topic.
const EventTypePriceAlert = "price_alert"

// Job names used by the scheduler, logs and test routes.
const (
	JobStationSync   = "sync"
	JobPriceHistory  = "record"
	JobLowPriceAlert = "notify"
)
