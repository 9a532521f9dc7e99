package impl

import (
	"context"
	"testing"

	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	mockRepo "gasradar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInboxService_ListNotifications(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantOffset   int
		wantLimit    int
		wantPage     int
		wantPageSize int
	}{
		{name: "defaults", page: 0, pageSize: 0, wantOffset: 0, wantLimit: 20, wantPage: 1, wantPageSize: 20},
		{name: "third page", page: 3, pageSize: 10, wantOffset: 20, wantLimit: 10, wantPage: 3, wantPageSize: 10},
		{name: "page size capped", page: 2, pageSize: 500, wantOffset: 100, wantLimit: 100, wantPage: 2, wantPageSize: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notificationRepo := mockRepo.NewMockNotificationRepository(t)
			svc := NewInboxService(notificationRepo)
			ctx := context.Background()
			userID := uuid.New()

			notificationRepo.EXPECT().ListByUser(ctx, userID, tt.wantOffset, tt.wantLimit).
				Return([]*entity.Notification{{UserID: userID}}, int64(41), nil)

			page, err := svc.ListNotifications(ctx, userID, tt.page, tt.pageSize)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantPageSize, page.PageSize)
			assert.Equal(t, int64(41), page.Total)
			assert.Len(t, page.Items, 1)
		})
	}
}

func TestInboxService_MarkRead(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	svc := NewInboxService(notificationRepo)
	ctx := context.Background()
	userID, notificationID := uuid.New(), uuid.New()

	notificationRepo.EXPECT().MarkRead(ctx, userID, notificationID).Return(domainerrors.ErrNotificationNotFound)

	err := svc.MarkRead(ctx, userID, notificationID)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}
