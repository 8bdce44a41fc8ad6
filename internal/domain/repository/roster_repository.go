package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/errors"
)

// ErrRosterEntryNotFound is returned when a roster entry is not found.
var ErrRosterEntryNotFound = errors.New("roster entry not found")

// RosterRepository defines the interface for per-consumer retailer roster
// database operations.
type RosterRepository interface {
	// FindEntriesByConsumer returns every roster entry for a consumer,
	// visible or not.
	FindEntriesByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.RosterEntry, error)

	// FindEntry returns the entry for one consumer-retailer pair.
	FindEntry(ctx context.Context, consumerID, retailerID uuid.UUID) (*entity.RosterEntry, error)

	// CreateEntry inserts a new roster entry.
	CreateEntry(ctx context.Context, entry *entity.RosterEntry) error

	// UpdateEntry replaces the mutable fields of an existing entry.
	UpdateEntry(ctx context.Context, entry *entity.RosterEntry) error

	// DeleteEntry removes an entry. Deleting a missing entry is not an error.
	DeleteEntry(ctx context.Context, consumerID, retailerID uuid.UUID) error

	// DeleteEntriesByConsumer removes the consumer's whole roster. Used
	// when an account is deactivated.
	DeleteEntriesByConsumer(ctx context.Context, consumerID uuid.UUID) error

	// FindVisibleConsumerIDsByRetailer returns the IDs of every active
	// consumer whose roster currently shows the retailer. Used by deal
	// matching.
	FindVisibleConsumerIDsByRetailer(ctx context.Context, retailerID uuid.UUID) ([]uuid.UUID, error)
}
