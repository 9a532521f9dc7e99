package impl

import (
	"context"
	"testing"
	"time"

	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/domain/repository"
	mockRepo "gasradar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewFixtures struct {
	service       *reviewService
	txManager     *mockRepo.MockTransactionManager
	factory       *mockRepo.MockRepositoryFactory
	stationRepo   *mockRepo.MockStationRepository
	reviewRepo    *mockRepo.MockReviewRepository
	txStationRepo *mockRepo.MockStationRepository
	txReviewRepo  *mockRepo.MockReviewRepository
}

func createTestReviewService(t *testing.T) reviewFixtures {
	fx := reviewFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		factory:       mockRepo.NewMockRepositoryFactory(t),
		stationRepo:   mockRepo.NewMockStationRepository(t),
		reviewRepo:    mockRepo.NewMockReviewRepository(t),
		txStationRepo: mockRepo.NewMockStationRepository(t),
		txReviewRepo:  mockRepo.NewMockReviewRepository(t),
	}

	fx.service = NewReviewService(ReviewServiceParams{
		TxManager:   fx.txManager,
		StationRepo: fx.stationRepo,
		ReviewRepo:  fx.reviewRepo,
	}).(*reviewService)
	fx.service.now = fixedClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	return fx
}

// expectTransaction runs the callback against the transactional repository mocks.
func (fx reviewFixtures) expectTransaction(ctx context.Context) {
	fx.factory.EXPECT().NewStationRepository().Return(fx.txStationRepo).Maybe()
	fx.factory.EXPECT().NewReviewRepository().Return(fx.txReviewRepo).Maybe()
	fx.txManager.EXPECT().Execute(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestReviewService_AddReview(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	userID := uuid.New()
	station := testStation("1001", 40.42, -3.70)
	summary := &entity.ReviewSummary{Scoring: 4.5, TotalRatings: 2}

	fx.expectTransaction(ctx)
	fx.txStationRepo.EXPECT().FindByExternalID(ctx, "1001").Return(station, nil)
	fx.txReviewRepo.EXPECT().Create(ctx, mock.MatchedBy(func(r *entity.Review) bool {
		return r.StationID == station.ID && r.UserID == userID && r.Rating == 4 && r.Comment == "Buen servicio"
	})).Return(nil)
	fx.txReviewRepo.EXPECT().Summarize(ctx, station.ID).Return(summary, nil)
	fx.txStationRepo.EXPECT().UpdateReviewSummary(ctx, station.ID, summary).Return(nil)

	review, err := fx.service.AddReview(ctx, userID, "1001", 4, "  Buen servicio ")
	require.NoError(t, err)
	assert.Equal(t, station.ID, review.StationID)
	assert.Equal(t, 4, review.Rating)
}

func TestReviewService_AddReview_Errors(t *testing.T) {
	tests := []struct {
		name      string
		rating    int
		setupMock func(fx reviewFixtures, ctx context.Context)
		wantErr   error
	}{
		{
			name:      "rating below range",
			rating:    0,
			setupMock: func(fx reviewFixtures, ctx context.Context) {},
			wantErr:   domainerrors.ErrValidationFailed,
		},
		{
			name:      "rating above range",
			rating:    6,
			setupMock: func(fx reviewFixtures, ctx context.Context) {},
			wantErr:   domainerrors.ErrValidationFailed,
		},
		{
			name:   "unknown station",
			rating: 3,
			setupMock: func(fx reviewFixtures, ctx context.Context) {
				fx.expectTransaction(ctx)
				fx.txStationRepo.EXPECT().FindByExternalID(ctx, "1001").Return(nil, domainerrors.ErrStationNotFound)
			},
			wantErr: domainerrors.ErrStationNotFound,
		},
		{
			name:   "second review by the same user",
			rating: 3,
			setupMock: func(fx reviewFixtures, ctx context.Context) {
				fx.expectTransaction(ctx)
				fx.txStationRepo.EXPECT().FindByExternalID(ctx, "1001").Return(testStation("1001", 40.42, -3.70), nil)
				fx.txReviewRepo.EXPECT().Create(ctx, mock.Anything).Return(domainerrors.ErrReviewAlreadyExists)
			},
			wantErr: domainerrors.ErrReviewAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewService(t)
			ctx := context.Background()
			tt.setupMock(fx, ctx)

			_, err := fx.service.AddReview(ctx, uuid.New(), "1001", tt.rating, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReviewService_ListReviews(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	station := testStation("1001", 40.42, -3.70)

	fx.stationRepo.EXPECT().FindByExternalID(ctx, "1001").Return(station, nil)
	fx.reviewRepo.EXPECT().ListByStation(ctx, station.ID).Return([]*entity.Review{{Rating: 5}, {Rating: 3}}, nil)

	reviews, err := fx.service.ListReviews(ctx, "1001")
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
