package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReviewSummary is the rating aggregate stored on a station.
type ReviewSummary struct {
	Scoring      float64 `json:"scoring"`       // Mean rating, 0 when there are no ratings.
	TotalRatings int     `json:"total_ratings"` // Number of ratings.
}

// Review is one user's rating of a station.
type Review struct {
	ID        uuid.UUID `json:"id"`
	StationID uuid.UUID `json:"station_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"` // 1 to 5.
	Comment   string    `json:"comment"`
	Likes     int       `json:"likes"`
	Dislikes  int       `json:"dislikes"`
	CreatedAt time.Time `json:"created_at"`
}
