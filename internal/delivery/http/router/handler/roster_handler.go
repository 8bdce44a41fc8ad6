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

// RosterHandler holds dependencies for retailer roster handlers.
type RosterHandler struct {
	uc     usecase.RosterUsecase
	logger *slog.Logger
}

// NewRosterHandler is the constructor for RosterHandler, injected by Fx.
func NewRosterHandler(uc usecase.RosterUsecase, logger *slog.Logger) *RosterHandler {
	return &RosterHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListRoster returns the consumer's visible retailers, nearest first.
func (h *RosterHandler) ListRoster(c echo.Context) error {
	consumerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	roster, err := h.uc.ListRoster(c.Request().Context(), consumerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, roster, "")
}

// AddRetailer pins a retailer to the consumer's roster.
func (h *RosterHandler) AddRetailer(c echo.Context) error {
	consumerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	retailerID, err := uuid.Parse(c.Param("retailerID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid retailer ID")
	}

	if err := h.uc.AddRetailer(c.Request().Context(), consumerID, retailerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Retailer added to roster")
}

// RemoveRetailer hides a retailer from the consumer's roster.
func (h *RosterHandler) RemoveRetailer(c echo.Context) error {
	consumerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	retailerID, err := uuid.Parse(c.Param("retailerID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid retailer ID")
	}

	if err := h.uc.RemoveRetailer(c.Request().Context(), consumerID, retailerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Retailer removed from roster")
}
