package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
)

// AddFavoriteInput carries a raw item description typed by the consumer.
// Brand, category and flags are derived, never supplied.
type AddFavoriteInput struct {
	ConsumerID uuid.UUID
	RawItem    string
}

// RecordPurchaseInput carries one purchase event for auto-favorite
// tracking.
type RecordPurchaseInput struct {
	ConsumerID  uuid.UUID
	RawItem     string
	PurchasedAt time.Time
}

// FavoriteUsecase manages a consumer's favorite items, both manual and
// auto-created from repeat purchases.
type FavoriteUsecase interface {
	// AddFavorite classifies the raw item and stores it as a manual
	// favorite. Re-adding an existing item updates it in place.
	AddFavorite(ctx context.Context, input *AddFavoriteInput) (*entity.FavoriteItem, error)

	// ListFavorites returns every favorite of the consumer.
	ListFavorites(ctx context.Context, consumerID uuid.UUID) ([]*entity.FavoriteItem, error)

	// RemoveFavorite deletes the consumer's favorites matching the raw
	// item's normalized name, regardless of source.
	RemoveFavorite(ctx context.Context, consumerID uuid.UUID, rawItem string) error

	// RecordPurchase logs a purchase and auto-favorites the item once
	// it has been bought on enough distinct days within the trailing
	// window. A threshold of zero disables auto-favoriting entirely.
	RecordPurchase(ctx context.Context, input *RecordPurchaseInput) error
}
