package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/errors"
)

// Domain-specific errors for deal persistence.
var (
	// ErrDealNotFound is returned when a deal is not found.
	ErrDealNotFound = errors.New("deal not found")
	// ErrDealSoldOut is returned when a quantity decrement would go
	// below zero.
	ErrDealSoldOut = errors.New("deal is sold out")
)

// DealRepository defines the interface for deal-related database operations.
type DealRepository interface {
	// CreateDeal persists a new deal.
	CreateDeal(ctx context.Context, deal *entity.Deal) error

	// FindDealByID retrieves a deal by its unique ID.
	FindDealByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error)

	// FindDealsByRetailer returns every deal posted by the retailer,
	// newest first.
	FindDealsByRetailer(ctx context.Context, retailerID uuid.UUID) ([]*entity.Deal, error)

	// FindAvailableDealsByRetailer returns the retailer's deals that are
	// still available and unexpired.
	FindAvailableDealsByRetailer(ctx context.Context, retailerID uuid.UUID) ([]*entity.Deal, error)

	// DecrementQuantity atomically reduces the remaining quantity and
	// flips the deal to unavailable when it reaches zero. Returns
	// ErrDealSoldOut when nothing is left.
	DecrementQuantity(ctx context.Context, id uuid.UUID, by int) error

	// UpdateDealStatus sets the deal availability status.
	UpdateDealStatus(ctx context.Context, id uuid.UUID, status entity.DealStatus) error

	// CountReadyDeals counts the retailer's available deals with at
	// least minQuantity remaining. Used by the readiness checklist.
	CountReadyDeals(ctx context.Context, retailerID uuid.UUID, minQuantity int) (int, error)
}
