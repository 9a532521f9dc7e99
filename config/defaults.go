package config

import (
	"strings"
	"time"
)

const (
	defaultMaxRequestBodySize = "100KB"
	defaultFeedURL            = "https://sedeaplicaciones.minetur.gob.es/ServiciosRESTCarburantes/PreciosCarburantes/EstacionesTerrestres/"
	defaultTimezone           = "Europe/Madrid"
)

func orDefault[T comparable](v *T, def T) {
	var zero T
	if *v == zero {
		*v = def
	}
}

func durationOrDefault(v *time.Duration, def time.Duration) {
	if *v <= 0 {
		*v = def
	}
}

// applyDefaults fills values the YAML file may leave out.
func applyDefaults(cfg *Config) {
	cfg.HTTP.MaxRequestBodySize = strings.TrimSpace(cfg.HTTP.MaxRequestBodySize)
	orDefault(&cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)

	orDefault(&cfg.Feed.URL, defaultFeedURL)
	durationOrDefault(&cfg.Feed.Timeout, 30*time.Second)

	durationOrDefault(&cfg.Jobs.Sync.Interval, 24*time.Hour)
	durationOrDefault(&cfg.Jobs.PriceHistory.Interval, 30*time.Minute)

	lp := &cfg.Jobs.LowPrice
	durationOrDefault(&lp.Interval, 2*time.Hour)
	durationOrDefault(&lp.AverageWindow, 15*24*time.Hour)
	durationOrDefault(&lp.DedupeWindow, 6*time.Hour)
	orDefault(&lp.HistoryLimit, 100)
	orDefault(&lp.MinHistoryEntries, 5)
	orDefault(&lp.PageSize, 200)
	orDefault(&lp.DefaultThreshold, 0.05)

	orDefault(&cfg.Query.DefaultRadiusKm, 5)
	orDefault(&cfg.Query.MaxRadiusKm, 50)
	orDefault(&cfg.Query.Timezone, defaultTimezone)
}
