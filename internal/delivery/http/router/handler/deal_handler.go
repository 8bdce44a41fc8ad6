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

// DealHandler holds dependencies for deal posting and claiming handlers.
type DealHandler struct {
	uc     usecase.DealUsecase
	logger *slog.Logger
}

// NewDealHandler is the constructor for DealHandler, injected by Fx.
func NewDealHandler(uc usecase.DealUsecase, logger *slog.Logger) *DealHandler {
	return &DealHandler{
		uc:     uc,
		logger: logger,
	}
}

type postDealRequest struct {
	Item          string    `json:"item" validate:"required"`
	RegularPrice  float64   `json:"regular_price" validate:"required,gt=0"`
	DiscountLevel int       `json:"discount_level" validate:"required,min=1,max=3"`
	Quantity      int       `json:"quantity" validate:"required,gt=0"`
	Expiry        time.Time `json:"expiry" validate:"required"`
}

// PostDeal stores a new deal and fans out notifications to matching
// consumers.
func (h *DealHandler) PostDeal(c echo.Context) error {
	retailerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	var req postDealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deal input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.PostDeal(c.Request().Context(), &usecase.PostDealInput{
		RetailerID:    retailerID,
		RawItem:       req.Item,
		RegularPrice:  req.RegularPrice,
		DiscountLevel: req.DiscountLevel,
		Quantity:      req.Quantity,
		Expiry:        req.Expiry,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Deal posted")
}

// ListDeals returns every deal the authenticated retailer has posted.
func (h *DealHandler) ListDeals(c echo.Context) error {
	retailerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	deals, err := h.uc.ListRetailerDeals(c.Request().Context(), retailerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deals, "")
}

// RemoveDeal marks the retailer's own deal unavailable.
func (h *DealHandler) RemoveDeal(c echo.Context) error {
	retailerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	dealID, err := uuid.Parse(c.Param("dealID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid deal ID")
	}

	if err := h.uc.RemoveDeal(c.Request().Context(), retailerID, dealID, false); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Deal removed")
}

// AdminRemoveDeal takes any deal off the market by admin action.
func (h *DealHandler) AdminRemoveDeal(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	dealID, err := uuid.Parse(c.Param("dealID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid deal ID")
	}

	if err := h.uc.RemoveDeal(c.Request().Context(), adminID, dealID, true); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Deal removed by admin")
}

// ClaimDeal decrements the deal's remaining quantity for one purchase.
func (h *DealHandler) ClaimDeal(c echo.Context) error {
	consumerID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Missing authentication")
	}

	dealID, err := uuid.Parse(c.Param("dealID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid deal ID")
	}

	deal, err := h.uc.ClaimDeal(c.Request().Context(), consumerID, dealID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deal, "Deal claimed")
}
