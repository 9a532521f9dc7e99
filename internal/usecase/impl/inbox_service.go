package impl

import (
	"context"

	"gasradar/internal/domain/repository"
	"gasradar/internal/errors"
	"gasradar/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultInboxPageSize = 20
	maxInboxPageSize     = 100
)

type inboxService struct {
	notificationRepo repository.NotificationRepository
}

// NewInboxService creates the notification inbox use case
func NewInboxService(notificationRepo repository.NotificationRepository) usecase.NotificationUsecase {
	return &inboxService{notificationRepo: notificationRepo}
}

// ListNotifications returns one page of the user's inbox, newest first
func (s *inboxService) ListNotifications(ctx context.Context, userID uuid.UUID, page, pageSize int) (*usecase.NotificationPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultInboxPageSize
	}
	pageSize = min(pageSize, maxInboxPageSize)

	items, total, err := s.notificationRepo.ListByUser(ctx, userID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "list notifications")
	}

	return &usecase.NotificationPage{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// MarkRead flags a notification of the user as read
func (s *inboxService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return s.notificationRepo.MarkRead(ctx, userID, notificationID)
}
