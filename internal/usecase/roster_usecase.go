package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
)

// RosterRetailer is one visible roster line joined with the retailer's
// public profile. DistanceMiles is rounded for display.
type RosterRetailer struct {
	Retailer      *entity.Retailer
	DistanceMiles float64
	InsideRadius  bool
	ManuallyAdded bool
}

// RosterUsecase manages each consumer's personal retailer roster.
// All mutations are serialized per consumer, so a recomputation never
// races a manual add or remove.
type RosterUsecase interface {
	// ListRoster returns the consumer's visible retailers sorted by
	// distance, nearest first.
	ListRoster(ctx context.Context, consumerID uuid.UUID) ([]*RosterRetailer, error)

	// AddRetailer pins a retailer to the roster regardless of distance,
	// and clears any earlier manual removal.
	AddRetailer(ctx context.Context, consumerID, retailerID uuid.UUID) error

	// RemoveRetailer hides a retailer from the roster. The removal is
	// sticky across recomputations until the consumer adds it back.
	RemoveRetailer(ctx context.Context, consumerID, retailerID uuid.UUID) error

	// Recompute rebuilds the distance facts of the consumer's roster
	// from their current location and radius. Manual flags survive.
	// A consumer without a geocoded location keeps an empty roster.
	// Returns the number of visible entries after the rebuild.
	Recompute(ctx context.Context, consumerID uuid.UUID) (int, error)
}
