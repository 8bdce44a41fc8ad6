package handler

import (
	"log/slog"
	"net/http"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/http/middleware"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/http/response"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListNotifications returns the consumer's notifications, newest first.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	consumerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	notifications, err := h.uc.ListNotifications(c.Request().Context(), consumerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

// MarkRead flags one notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	consumerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	notificationID, err := uuid.Parse(c.Param("notificationID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid notification ID")
	}

	if err := h.uc.MarkRead(c.Request().Context(), consumerID, notificationID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked read")
}
