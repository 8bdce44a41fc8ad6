package postgres

import (
	"context"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	domainerrors "github.com/alfredtoussaint-cpu/dealshaq/internal/domain/errors"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/repository"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotification inserts a notification. The unique index on
// (consumer_id, deal_id) makes the insert the idempotency check: a
// conflict means the consumer was already notified for this deal.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateNotification
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification")
	}

	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// FindNotificationsByConsumer returns the consumer's notifications, newest first.
func (repo *notificationRepository) FindNotificationsByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("consumer_id = ?", consumerID).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by consumer")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkNotificationRead flags a notification as read. The consumer filter
// makes marking someone else's notification a no-op rather than an error.
func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, consumerID, notificationID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND consumer_id = ?", notificationID, consumerID).
		Update("read", true).Error; err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:         data.ID,
		ConsumerID: data.ConsumerID,
		DealID:     data.DealID,
		Message:    data.Message,
		Read:       data.Read,
		CreatedAt:  data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:         data.ID,
		ConsumerID: data.ConsumerID,
		DealID:     data.DealID,
		Message:    data.Message,
		Read:       data.Read,
		CreatedAt:  data.CreatedAt,
	}
}
