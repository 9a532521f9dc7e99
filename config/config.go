// Package config loads gasradar settings from config.yaml with environment overrides.
package config

import (
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

type Config struct {
	Env      EnvConfig        `json:"env" yaml:"env"`
	HTTP     HTTPConfig       `json:"http" yaml:"http"`
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres" validate:"required,structonly"`

	// SlowQueryThreshold logs statements slower than this as warnings. Zero uses 200ms.
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	// AutoMigrate applies pending SQL migrations on startup.
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	SecretKey struct {
		Access string `json:"access" yaml:"access" validate:"required"`
	} `json:"secretKey" yaml:"secretKey"`

	Feed  FeedConfig  `json:"feed" yaml:"feed"`
	Jobs  JobsConfig  `json:"jobs" yaml:"jobs"`
	Query QueryConfig `json:"query" yaml:"query"`

	// Optional sections; nil disables or defaults the matching component.
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`
	Firebase   *FirebaseConfig   `json:"firebase" yaml:"firebase"`
	QRCode     *QRCodeConfig     `json:"qrcode" yaml:"qrcode"`
	PubSub     *PubSubConfig     `json:"pubsub" yaml:"pubsub"`
	Geocoder   *GeocoderConfig   `json:"geocoder" yaml:"geocoder"`
}

// EnvConfig identifies the deployment and tunes logging.
type EnvConfig struct {
	Env         string `json:"env" yaml:"env"`
	ServiceName string `json:"serviceName" yaml:"serviceName"`
	Debug       bool   `json:"debug" yaml:"debug"`
	Log         Log    `json:"log" yaml:"log"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// HTTPConfig is shared by the API server and the push worker.
type HTTPConfig struct {
	Port               int          `json:"port" yaml:"port" validate:"gte=0,lte=65535"`
	MaxRequestBodySize string       `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	Timeouts           HTTPTimeouts `json:"timeouts" yaml:"timeouts"`
}

type HTTPTimeouts struct {
	ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
}

// FeedConfig points at the ministry price feed.
type FeedConfig struct {
	URL            string        `json:"url" yaml:"url" validate:"url"`
	Timeout        time.Duration `json:"timeout" yaml:"timeout"`
	ValidateSchema bool          `json:"validateSchema" yaml:"validateSchema"`
}

// JobConfig is shared by every scheduled job.
type JobConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Interval time.Duration `json:"interval" yaml:"interval" validate:"gte=1m"`
}

// LowPriceConfig tunes the low-price notifier.
type LowPriceConfig struct {
	JobConfig `koanf:",squash"`

	AverageWindow     time.Duration      `json:"averageWindow" yaml:"averageWindow"`
	DedupeWindow      time.Duration      `json:"dedupeWindow" yaml:"dedupeWindow"`
	HistoryLimit      int                `json:"historyLimit" yaml:"historyLimit" validate:"gt=0"`
	MinHistoryEntries int                `json:"minHistoryEntries" yaml:"minHistoryEntries" validate:"ltefield=HistoryLimit"`
	PageSize          int                `json:"pageSize" yaml:"pageSize" validate:"gt=0"`
	DefaultThreshold  float64            `json:"defaultThreshold" yaml:"defaultThreshold" validate:"gt=0,lt=1"`
	Thresholds        map[string]float64 `json:"thresholds" yaml:"thresholds" validate:"dive,gt=0,lt=1"`
}

type JobsConfig struct {
	Sync         JobConfig      `json:"sync" yaml:"sync"`
	PriceHistory JobConfig      `json:"priceHistory" yaml:"priceHistory"`
	LowPrice     LowPriceConfig `json:"lowPrice" yaml:"lowPrice"`
}

// QueryConfig tunes station searches.
type QueryConfig struct {
	DefaultRadiusKm float64       `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`
	MaxRadiusKm     float64       `json:"maxRadiusKm" yaml:"maxRadiusKm" validate:"gtefield=DefaultRadiusKm"`
	CacheTTL        time.Duration `json:"cacheTTL" yaml:"cacheTTL"`
	Timezone        string        `json:"timezone" yaml:"timezone" validate:"timezone"`
}

type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel" validate:"omitempty,oneof=L M Q H l m q h"`
	// BaseURL is the public site; codes then encode <BaseURL>/stations/<id>.
	BaseURL string `json:"baseUrl" yaml:"baseUrl" validate:"omitempty,url"`
}

// PubSubConfig selects where alert events are published.
type PubSubConfig struct {
	// Provider is local or google; empty disables publishing.
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=local google"`

	ProjectID string `json:"projectId" yaml:"projectId" validate:"required_if=Provider google"`
	TopicID   string `json:"topicId" yaml:"topicId" validate:"required_if=Provider google"`

	// LocalEndpoint receives push envelopes when Provider is local.
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint" validate:"required_if=Provider local,omitempty,url"`

	// PushAudience is the audience of the push subscription's OIDC token.
	// Empty derives it from the request URL.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
	// PushServiceAccount, when set, must match the token's email claim.
	PushServiceAccount string `json:"pushServiceAccount" yaml:"pushServiceAccount" validate:"omitempty,email"`
}

// GeocoderConfig points at a Nominatim server.
type GeocoderConfig struct {
	Server string `json:"server" yaml:"server" validate:"omitempty,url"`
}
