package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/errors"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrDuplicateNotification is returned when the consumer already has
	// a notification for the same deal.
	ErrDuplicateNotification = errors.New("notification already exists for deal")
)

// NotificationRepository defines the interface for notification database
// operations.
type NotificationRepository interface {
	// CreateNotification inserts a notification. The insert is atomic
	// against the (consumer, deal) uniqueness rule and returns
	// ErrDuplicateNotification on conflict.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationsByConsumer returns the consumer's notifications,
	// newest first.
	FindNotificationsByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.Notification, error)

	// MarkNotificationRead flags a notification as read. Marking a
	// notification that does not exist or belongs to another consumer is
	// a no-op.
	MarkNotificationRead(ctx context.Context, consumerID, notificationID uuid.UUID) error
}
