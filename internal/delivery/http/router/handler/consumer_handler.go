package handler

import (
	"log/slog"
	"net/http"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/http/middleware"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/http/response"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ConsumerHandler holds dependencies for consumer profile handlers.
type ConsumerHandler struct {
	uc     usecase.ConsumerUsecase
	logger *slog.Logger
}

// NewConsumerHandler is the constructor for ConsumerHandler, injected by Fx.
func NewConsumerHandler(uc usecase.ConsumerUsecase, logger *slog.Logger) *ConsumerHandler {
	return &ConsumerHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile returns the authenticated consumer's profile.
func (h *ConsumerHandler) GetProfile(c echo.Context) error {
	consumerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	consumer, err := h.uc.GetProfile(c.Request().Context(), consumerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, consumer, "")
}

type setLocationRequest struct {
	Address string `json:"address" validate:"required"`
}

// SetDeliveryLocation geocodes and saves the consumer's delivery address,
// then rebuilds their retailer roster.
func (h *ConsumerHandler) SetDeliveryLocation(c echo.Context) error {
	consumerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var req setLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	consumer, err := h.uc.SetDeliveryLocation(c.Request().Context(), &usecase.SetDeliveryLocationInput{
		ConsumerID: consumerID,
		Address:    req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, consumer, "Delivery location updated")
}

type setRadiusRequest struct {
	RadiusMiles float64 `json:"radius_miles" validate:"required"`
}

// SetRadius saves the consumer's area-of-interest radius and rebuilds
// their retailer roster.
func (h *ConsumerHandler) SetRadius(c echo.Context) error {
	consumerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var req setRadiusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid radius input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	consumer, err := h.uc.SetRadius(c.Request().Context(), &usecase.SetRadiusInput{
		ConsumerID:  consumerID,
		RadiusMiles: req.RadiusMiles,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, consumer, "Radius updated")
}

type setThresholdRequest struct {
	Days int `json:"days"`
}

// SetAutoFavoriteThreshold saves the auto-favorite day threshold.
func (h *ConsumerHandler) SetAutoFavoriteThreshold(c echo.Context) error {
	consumerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var req setThresholdRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid threshold input")
	}

	consumer, err := h.uc.SetAutoFavoriteThreshold(c.Request().Context(), &usecase.SetAutoFavoriteThresholdInput{
		ConsumerID: consumerID,
		Days:       req.Days,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, consumer, "Auto-favorite threshold updated")
}

// Deactivate marks the consumer account inactive.
func (h *ConsumerHandler) Deactivate(c echo.Context) error {
	consumerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	if err := h.uc.Deactivate(c.Request().Context(), consumerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deactivated")
}
