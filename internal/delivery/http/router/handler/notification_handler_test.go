package handler

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/http/middleware"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	mockusecase "github.com/alfredtoussaint-cpu/dealshaq/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler_ListNotifications(t *testing.T) {
	mockUC := mockusecase.NewMockNotificationUsecase(t)
	handler := NewNotificationHandler(mockUC, slog.New(slog.DiscardHandler))

	consumerID := uuid.New()
	notifications := []*entity.Notification{
		{
			ID:         uuid.New(),
			ConsumerID: consumerID,
			DealID:     uuid.New(),
			Message:    "New deal on Milk - 50% off at Corner Market!",
			CreatedAt:  time.Now(),
		},
	}
	mockUC.EXPECT().
		ListNotifications(mock.Anything, consumerID).
		Return(notifications, nil)

	c, rec := newTestContext(t, http.MethodGet, "/consumer/notifications", "")
	c.Set(middleware.ContextKeyUserID, consumerID)

	require.NoError(t, handler.ListNotifications(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Corner Market")
}

func TestNotificationHandler_ListNotifications_Unauthenticated(t *testing.T) {
	mockUC := mockusecase.NewMockNotificationUsecase(t)
	handler := NewNotificationHandler(mockUC, slog.New(slog.DiscardHandler))

	c, rec := newTestContext(t, http.MethodGet, "/consumer/notifications", "")

	require.NoError(t, handler.ListNotifications(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	mockUC := mockusecase.NewMockNotificationUsecase(t)
	handler := NewNotificationHandler(mockUC, slog.New(slog.DiscardHandler))

	consumerID := uuid.New()
	notificationID := uuid.New()
	mockUC.EXPECT().
		MarkRead(mock.Anything, consumerID, notificationID).
		Return(nil)

	c, rec := newTestContext(t, http.MethodPost, "/consumer/notifications/"+notificationID.String()+"/read", "")
	c.Set(middleware.ContextKeyUserID, consumerID)
	c.SetParamNames("notificationID")
	c.SetParamValues(notificationID.String())

	require.NoError(t, handler.MarkRead(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotificationHandler_MarkRead_BadID(t *testing.T) {
	mockUC := mockusecase.NewMockNotificationUsecase(t)
	handler := NewNotificationHandler(mockUC, slog.New(slog.DiscardHandler))

	c, rec := newTestContext(t, http.MethodPost, "/consumer/notifications/nope/read", "")
	c.Set(middleware.ContextKeyUserID, uuid.New())
	c.SetParamNames("notificationID")
	c.SetParamValues("nope")

	require.NoError(t, handler.MarkRead(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
