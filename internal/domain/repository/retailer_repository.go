package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/errors"
)

// Domain-specific errors for retailer persistence.
var (
	// ErrRetailerNotFound is returned when a retailer is not found.
	ErrRetailerNotFound = errors.New("retailer not found")
	// ErrDuplicateRetailer is returned when the email is already registered.
	ErrDuplicateRetailer = errors.New("retailer already exists")
)

// RetailerRepository defines the interface for retailer-related database operations.
type RetailerRepository interface {
	// CreateRetailer persists a new retailer.
	CreateRetailer(ctx context.Context, retailer *entity.Retailer) error

	// FindRetailerByID retrieves a retailer by its unique ID.
	FindRetailerByID(ctx context.Context, id uuid.UUID) (*entity.Retailer, error)

	// FindRetailerByEmail retrieves a retailer by login email.
	FindRetailerByEmail(ctx context.Context, email string) (*entity.Retailer, error)

	// FindLocatableRetailers returns every active retailer that has
	// geocoded store coordinates. Used by roster recomputation.
	FindLocatableRetailers(ctx context.Context) ([]*entity.Retailer, error)

	// UpdateRetailerProfile replaces the mutable profile fields (store
	// name, address, coordinates, hours, logo).
	UpdateRetailerProfile(ctx context.Context, retailer *entity.Retailer) error

	// UpdateStoreStatus sets the store lifecycle status.
	UpdateStoreStatus(ctx context.Context, id uuid.UUID, status entity.StoreStatus) error
}
