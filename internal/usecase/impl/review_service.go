package impl

import (
	"context"
	"strings"
	"time"

	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/domain/repository"
	"gasradar/internal/errors"
	"gasradar/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	minRating = 1
	maxRating = 5
)

type reviewService struct {
	txManager   repository.TransactionManager
	stationRepo repository.StationRepository
	reviewRepo  repository.ReviewRepository
	now         func() time.Time
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	StationRepo repository.StationRepository
	ReviewRepo  repository.ReviewRepository
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:   params.TxManager,
		stationRepo: params.StationRepo,
		reviewRepo:  params.ReviewRepo,
		now:         time.Now,
	}
}

// AddReview stores the rating and refreshes the station's aggregate atomically
func (s *reviewService) AddReview(ctx context.Context, userID uuid.UUID, idEESS string, rating int, comment string) (*entity.Review, error) {
	if rating < minRating || rating > maxRating {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
	}

	review := &entity.Review{
		ID:        uuid.New(),
		UserID:    userID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: s.now(),
	}

	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		stationRepo := factory.NewStationRepository()
		reviewRepo := factory.NewReviewRepository()

		station, err := stationRepo.FindByExternalID(ctx, idEESS)
		if err != nil {
			return err
		}
		review.StationID = station.ID

		if err := reviewRepo.Create(ctx, review); err != nil {
			return err
		}

		summary, err := reviewRepo.Summarize(ctx, station.ID)
		if err != nil {
			return errors.Wrap(err, "summarize reviews")
		}

		return stationRepo.UpdateReviewSummary(ctx, station.ID, summary)
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}

// ListReviews returns a station's reviews, newest first
func (s *reviewService) ListReviews(ctx context.Context, idEESS string) ([]*entity.Review, error) {
	station, err := s.stationRepo.FindByExternalID(ctx, idEESS)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.ListByStation(ctx, station.ID)
	if err != nil {
		return nil, errors.Wrap(err, "list reviews")
	}

	return reviews, nil
}
