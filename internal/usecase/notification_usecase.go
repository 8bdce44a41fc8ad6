package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
)

// NotificationUsecase exposes a consumer's stored notifications.
type NotificationUsecase interface {
	// ListNotifications returns the consumer's notifications, newest
	// first.
	ListNotifications(ctx context.Context, consumerID uuid.UUID) ([]*entity.Notification, error)

	// MarkRead flags a notification as read. Unknown or foreign IDs are
	// silently ignored.
	MarkRead(ctx context.Context, consumerID, notificationID uuid.UUID) error
}
