package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/http/middleware"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/http/response"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for favorite-catalog handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		uc:     uc,
		logger: logger,
	}
}

type favoriteRequest struct {
	Item string `json:"item" validate:"required"`
}

// AddFavorite classifies the raw item text and stores it as a manual
// favorite.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	consumerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	favorite, err := h.uc.AddFavorite(c.Request().Context(), &usecase.AddFavoriteInput{
		ConsumerID: consumerID,
		RawItem:    req.Item,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, favorite, "Favorite added")
}

// ListFavorites returns every favorite of the consumer.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	consumerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	favorites, err := h.uc.ListFavorites(c.Request().Context(), consumerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "")
}

// RemoveFavorite deletes the consumer's favorites matching the item's
// normalized name.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	consumerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favorite input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.RemoveFavorite(c.Request().Context(), consumerID, req.Item); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Favorite removed")
}

type purchaseEventRequest struct {
	ConsumerID  uuid.UUID  `json:"consumer_id" validate:"required"`
	Item        string     `json:"item" validate:"required"`
	PurchasedAt *time.Time `json:"purchased_at"`
}

// RecordPurchase ingests one purchase event for auto-favorite tracking.
// Meant for internal callers, not the public API surface.
func (h *FavoriteHandler) RecordPurchase(c echo.Context) error {
	var req purchaseEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase event")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	purchasedAt := time.Now()
	if req.PurchasedAt != nil {
		purchasedAt = *req.PurchasedAt
	}

	if err := h.uc.RecordPurchase(c.Request().Context(), &usecase.RecordPurchaseInput{
		ConsumerID:  req.ConsumerID,
		RawItem:     req.Item,
		PurchasedAt: purchasedAt,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Purchase recorded")
}
