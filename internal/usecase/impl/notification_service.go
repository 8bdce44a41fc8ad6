package impl

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/repository"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/errors"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
}

// NotificationServiceParams holds dependencies for notificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{notificationRepo: params.NotificationRepo}
}

func (srv *notificationService) ListNotifications(ctx context.Context, consumerID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.FindNotificationsByConsumer(ctx, consumerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// MarkRead is deliberately forgiving: an unknown or foreign ID is a
// no-op, so clients can acknowledge blindly.
func (srv *notificationService) MarkRead(ctx context.Context, consumerID, notificationID uuid.UUID) error {
	if err := srv.notificationRepo.MarkNotificationRead(ctx, consumerID, notificationID); err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}
