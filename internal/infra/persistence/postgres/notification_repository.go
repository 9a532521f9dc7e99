package postgres

import (
	"cmp"
	"context"
	"time"

	"gasradar/internal/domain/entity"
	domainerrors "gasradar/internal/domain/errors"
	"gasradar/internal/domain/repository"
	"gasradar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const logBatchSize = 100

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	row := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Clauses(clause.Returning{}).Create(row).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("notification references an unknown user or station")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	*notification = *toNotificationDomain(row)

	return nil
}

// ExistsForStationSince backs the low-price dedupe window.
func (repo *notificationRepository) ExistsForStationSince(ctx context.Context, userID, stationID uuid.UUID, since time.Time) (bool, error) {
	var exists bool

	err := repo.db.WithContext(ctx).
		Raw(`SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE user_id = ? AND station_id = ? AND created_at >= ?
		)`, userID, stationID, since).
		Scan(&exists).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check recent notifications")
	}

	return exists, nil
}

func (repo *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]*entity.Notification, int64, error) {
	ofUser := func(db *gorm.DB) *gorm.DB {
		return db.Model(&model.NotificationModel{}).Where("user_id = ?", userID)
	}

	var total int64
	if err := repo.db.WithContext(ctx).Scopes(ofUser).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count notifications")
	}
	if total == 0 {
		return []*entity.Notification{}, 0, nil
	}

	var rows []*model.NotificationModel
	if err := repo.db.WithContext(ctx).
		Scopes(ofUser, page(offset, limit)).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]*entity.Notification, len(rows))
	for i, row := range rows {
		notifications[i] = toNotificationDomain(row)
	}

	return notifications, total, nil
}

// page applies offset and limit when they are positive.
func page(offset, limit int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if offset > 0 {
			db = db.Offset(offset)
		}
		if limit > 0 {
			db = db.Limit(limit)
		}

		return db
	}
}

// MarkRead is scoped to the owner so other users' ids read as not found.
func (repo *notificationRepository) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("read", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification as read")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotificationNotFound
	}

	return nil
}

func (repo *notificationRepository) BatchCreateLogs(ctx context.Context, logs []*entity.NotificationLog) error {
	if len(logs) == 0 {
		return nil
	}

	rows := make([]*model.NotificationLogModel, len(logs))
	for i, l := range logs {
		rows[i] = &model.NotificationLogModel{
			ID:             l.ID,
			NotificationID: l.NotificationID,
			UserID:         l.UserID,
			DeviceID:       l.DeviceID,
			Status:         l.Status,
			ErrorMessage:   l.ErrorMessage,
			SentAt:         l.SentAt,
		}
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(rows, logBatchSize).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrNotificationNotFound.WrapMessage("delivery log references an unknown notification")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to store delivery logs")
	}

	for i, row := range rows {
		logs[i].ID = row.ID
		logs[i].SentAt = row.SentAt
	}

	return nil
}

func toNotificationDomain(row *model.NotificationModel) *entity.Notification {
	return &entity.Notification{
		ID:        row.ID,
		UserID:    row.UserID,
		StationID: row.StationID,
		Title:     row.Title,
		Message:   row.Message,
		Type:      entity.NotificationType(row.Type),
		Read:      row.Read,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func fromNotificationDomain(n *entity.Notification) *model.NotificationModel {
	return &model.NotificationModel{
		ID:        n.ID,
		UserID:    n.UserID,
		StationID: n.StationID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(cmp.Or(n.Type, entity.NotificationInfo)),
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
