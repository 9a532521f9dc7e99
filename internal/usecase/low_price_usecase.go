package usecase

import (
	"context"
	"time"
)

// LowPriceReport tallies one low-price scan.
type LowPriceReport struct {
	Users      int           `json:"users"`
	Stations   int           `json:"stations"`
	Sent       int           `json:"sent"`
	InboxOnly  int           `json:"inboxOnly"`  // Alerts stored for users with push notifications off.
	Suppressed int           `json:"suppressed"` // Eligible alerts inside the dedupe window.
	Failed     int           `json:"failed"`
	Duration   time.Duration `json:"duration"`
}

// LowPriceUsecase alerts users when a saved station drops below its recent average.
type LowPriceUsecase interface {
	NotifyLowPrices(ctx context.Context) (*LowPriceReport, error)
}
