package postgres

import (
	"context"
	"math"

	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/domain/repository"
	"gasradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{
		db: db,
	}
}

// Create persists a new review.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrReviewAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrStationNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("rating must be between 1 and 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

type reviewAggregate struct {
	Average float64
	Total   int
}

// Summarize computes the mean rating and count of a station's reviews.
func (repo *reviewRepository) Summarize(ctx context.Context, stationID uuid.UUID) (*entity.ReviewSummary, error) {
	var agg reviewAggregate

	if err := repo.db.WithContext(ctx).
		Model(&model.StationReviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS total").
		Where("station_id = ?", stationID).
		Scan(&agg).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize reviews")
	}

	return &entity.ReviewSummary{
		Scoring:      math.Round(agg.Average*100) / 100,
		TotalRatings: agg.Total,
	}, nil
}

// ListByStation retrieves a station's reviews, newest first.
func (repo *reviewRepository) ListByStation(ctx context.Context, stationID uuid.UUID) ([]*entity.Review, error) {
	var reviewModels []*model.StationReviewModel

	if err := repo.db.WithContext(ctx).
		Where("station_id = ?", stationID).
		Order("created_at DESC").
		Find(&reviewModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// --- Mapper Functions ---

func toReviewDomain(data *model.StationReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		StationID: data.StationID,
		UserID:    data.UserID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		Likes:     data.Likes,
		Dislikes:  data.Dislikes,
		CreatedAt: data.CreatedAt,
	}
}

func fromReviewDomain(data *entity.Review) *model.StationReviewModel {
	if data == nil {
		return nil
	}

	return &model.StationReviewModel{
		ID:        data.ID,
		StationID: data.StationID,
		UserID:    data.UserID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		Likes:     data.Likes,
		Dislikes:  data.Dislikes,
		CreatedAt: data.CreatedAt,
	}
}
