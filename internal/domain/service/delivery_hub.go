package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
)

// DeliveryHub pushes notifications to connected consumers over their
// live connection. Each consumer holds at most one connection slot.
type DeliveryHub interface {
	// Push attempts real-time delivery of a stored notification.
	// Returns true only when the payload was handed to a live, open
	// connection. A missing, closed, or backed-up connection returns
	// false; the notification stays unread in the store either way.
	Push(ctx context.Context, consumerID uuid.UUID, notification *entity.Notification) bool

	// Connected reports whether the consumer currently holds a live slot.
	Connected(consumerID uuid.UUID) bool
}
