package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/errors"
)

// ErrFavoriteNotFound is returned when a favorite item is not found.
var ErrFavoriteNotFound = errors.New("favorite item not found")

// FavoriteRepository defines the interface for favorite-item database
// operations.
type FavoriteRepository interface {
	// UpsertFavorite inserts the favorite, or updates the existing row
	// when the consumer already has one with the same normalized key.
	// A manual insert overwrites an auto-created row; an auto insert
	// never downgrades a manual one.
	UpsertFavorite(ctx context.Context, favorite *entity.FavoriteItem) error

	// FindFavoritesByConsumer returns every favorite for one consumer.
	FindFavoritesByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.FavoriteItem, error)

	// FindFavoritesByConsumers returns the favorites of many consumers in
	// one query, keyed by consumer ID. Used by deal matching fan-out.
	FindFavoritesByConsumers(ctx context.Context, consumerIDs []uuid.UUID) (map[uuid.UUID][]*entity.FavoriteItem, error)

	// DeleteFavoriteByName removes the consumer's favorites with the
	// given normalized item name, regardless of brand or source.
	// Returns ErrFavoriteNotFound when none match.
	DeleteFavoriteByName(ctx context.Context, consumerID uuid.UUID, nameKey string) error

	// CountDistinctPurchaseDays returns, for each item key in keys, how
	// many distinct calendar days the consumer purchased it within the
	// trailing window. Item keys are normalized names.
	CountDistinctPurchaseDays(ctx context.Context, consumerID uuid.UUID, keys []string, windowDays int) (map[string]int, error)

	// RecordPurchase appends one purchase event for auto-favorite
	// tracking.
	RecordPurchase(ctx context.Context, purchase *entity.Purchase) error
}
