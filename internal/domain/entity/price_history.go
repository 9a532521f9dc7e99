package entity

import (
	"time"

	"github.com/google/uuid"
)

// PriceHistoryEntry is an immutable snapshot of one station's prices.
type PriceHistoryEntry struct {
	ID        uuid.UUID `json:"id"`
	StationID uuid.UUID `json:"station_id"`
	Prices    Prices    `json:"prices"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryOrder selects the sort direction of a history read.
type HistoryOrder int

const (
	NewestFirst HistoryOrder = iota
	OldestFirst
)

// HistoryRange bounds a history read. Zero values mean unbounded.
type HistoryRange struct {
	Since time.Time
	Limit int
	Order HistoryOrder
}
