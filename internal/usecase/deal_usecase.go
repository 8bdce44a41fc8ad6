package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
)

// PostDealInput carries a retailer's new deal. Discount percentages and
// the deal price are derived from the level, never supplied.
type PostDealInput struct {
	RetailerID    uuid.UUID
	RawItem       string
	RegularPrice  float64
	DiscountLevel int
	Quantity      int
	Expiry        time.Time
}

// PostDealOutput returns the stored deal together with the fan-out
// result of the notification run.
type PostDealOutput struct {
	Deal                *entity.Deal
	MatchedConsumers    int
	StoredNotifications int
	PushedLive          int
}

// DealUsecase manages deal posting and the notification fan-out that
// follows it.
type DealUsecase interface {
	// PostDeal validates, classifies and stores the deal, then matches
	// it against the favorites of every consumer whose roster shows the
	// retailer. The store must be live. Matching is idempotent: a
	// consumer is never notified twice for the same deal.
	PostDeal(ctx context.Context, input *PostDealInput) (*PostDealOutput, error)

	// ListRetailerDeals returns every deal the retailer has posted,
	// newest first.
	ListRetailerDeals(ctx context.Context, retailerID uuid.UUID) ([]*entity.Deal, error)

	// RemoveDeal takes a deal off the market. Retailers may mark their
	// own deals unavailable; admins may remove any deal.
	RemoveDeal(ctx context.Context, actorID, dealID uuid.UUID, asAdmin bool) error

	// ClaimDeal decrements the remaining quantity for one purchase and
	// records the purchase for auto-favorite tracking.
	ClaimDeal(ctx context.Context, consumerID, dealID uuid.UUID) (*entity.Deal, error)
}
