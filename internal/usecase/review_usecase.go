package usecase

import (
	"context"

	"gasradar/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewUsecase manages station ratings.
type ReviewUsecase interface {
	// AddReview stores the rating and refreshes the station's aggregate in the same transaction.
	AddReview(ctx context.Context, userID uuid.UUID, idEESS string, rating int, comment string) (*entity.Review, error)

	// ListReviews returns a station's reviews, newest first.
	ListReviews(ctx context.Context, idEESS string) ([]*entity.Review, error)
}
