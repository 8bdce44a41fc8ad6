package handler

import (
	"log/slog"
	"net/http"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/http/middleware"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/http/response"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RetailerHandler holds dependencies for retailer profile and store
// lifecycle handlers.
type RetailerHandler struct {
	uc     usecase.RetailerUsecase
	logger *slog.Logger
}

// NewRetailerHandler is the constructor for RetailerHandler, injected by Fx.
func NewRetailerHandler(uc usecase.RetailerUsecase, logger *slog.Logger) *RetailerHandler {
	return &RetailerHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetProfile returns the authenticated retailer's profile.
func (h *RetailerHandler) GetProfile(c echo.Context) error {
	retailerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	retailer, err := h.uc.GetProfile(c.Request().Context(), retailerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, retailer, "")
}

type updateProfileRequest struct {
	StoreName    string `json:"store_name" validate:"required"`
	StoreAddress string `json:"store_address"`
	StoreHours   string `json:"store_hours"`
	LogoURL      string `json:"logo_url"`
}

// UpdateProfile saves the store profile, re-geocoding a changed address.
func (h *RetailerHandler) UpdateProfile(c echo.Context) error {
	retailerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	retailer, err := h.uc.UpdateProfile(c.Request().Context(), &usecase.UpdateRetailerProfileInput{
		RetailerID:   retailerID,
		StoreName:    req.StoreName,
		StoreAddress: req.StoreAddress,
		StoreHours:   req.StoreHours,
		LogoURL:      req.LogoURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, retailer, "Profile updated")
}

// Readiness returns the go-live checklist for the sandbox store.
func (h *RetailerHandler) Readiness(c echo.Context) error {
	retailerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	readiness, err := h.uc.Readiness(c.Request().Context(), retailerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, readiness, "")
}

// RequestGoLive moves a sandbox store to pending live once the checklist
// passes.
func (h *RetailerHandler) RequestGoLive(c echo.Context) error {
	retailerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	retailer, err := h.uc.RequestGoLive(c.Request().Context(), retailerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, retailer, "Go-live requested")
}

type updateStoreStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateStoreStatus applies an admin store lifecycle transition.
func (h *RetailerHandler) UpdateStoreStatus(c echo.Context) error {
	retailerID, err := uuid.Parse(c.Param("retailerID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid retailer ID")
	}

	var req updateStoreStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	retailer, err := h.uc.UpdateStoreStatus(c.Request().Context(), &usecase.UpdateStoreStatusInput{
		RetailerID: retailerID,
		Status:     entity.StoreStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, retailer, "Store status updated")
}
