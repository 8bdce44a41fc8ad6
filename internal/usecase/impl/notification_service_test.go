package impl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	mockRepo "github.com/alfredtoussaint-cpu/dealshaq/internal/mocks/repository"
)

func TestNotificationService_ListNotifications(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(NotificationServiceParams{NotificationRepo: notificationRepo})
	ctx := context.Background()
	consumerID := uuid.New()

	stored := []*entity.Notification{
		{ID: uuid.New(), ConsumerID: consumerID, Message: "New deal on Milk - 50% off at Corner Market!", CreatedAt: time.Now()},
	}
	notificationRepo.EXPECT().FindNotificationsByConsumer(ctx, consumerID).Return(stored, nil)

	notifications, err := service.ListNotifications(ctx, consumerID)
	require.NoError(t, err)
	assert.Equal(t, stored, notifications)
}

func TestNotificationService_MarkRead_UnknownIDIsNoOp(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(NotificationServiceParams{NotificationRepo: notificationRepo})
	ctx := context.Background()
	consumerID := uuid.New()
	notificationID := uuid.New()

	// The repository swallows unknown and foreign IDs.
	notificationRepo.EXPECT().MarkNotificationRead(ctx, consumerID, notificationID).Return(nil)

	require.NoError(t, service.MarkRead(ctx, consumerID, notificationID))
}
