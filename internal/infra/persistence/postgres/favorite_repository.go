package postgres

import (
	"context"
	"time"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	domainerrors "github.com/alfredtoussaint-cpu/dealshaq/internal/domain/errors"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/repository"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db: db,
	}
}

// UpsertFavorite inserts the favorite or updates the consumer's existing
// row with the same normalized (name, brand) key. A manual insert
// overwrites an auto-created row; an auto insert never downgrades a
// manual one.
func (repo *favoriteRepository) UpsertFavorite(ctx context.Context, favorite *entity.FavoriteItem) error {
	favoriteM := fromFavoriteDomain(favorite)

	var existing model.FavoriteItemModel
	err := repo.db.WithContext(ctx).
		Where("consumer_id = ? AND item_key = ? AND brand_key = ?",
			favoriteM.ConsumerID, favoriteM.ItemKey, favoriteM.BrandKey).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if createErr := repo.db.WithContext(ctx).Create(favoriteM).Error; createErr != nil {
			// A concurrent insert of the same key is equivalent to the
			// row already existing.
			if isUniqueConstraintViolation(createErr) {
				return nil
			}

			return domainerrors.NewDatabaseExecuteError(createErr, "failed to create favorite")
		}

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to look up favorite for upsert")
	}

	if existing.Source == string(entity.FavoriteSourceManual) && favorite.Source == entity.FavoriteSourceAuto {
		favorite.ID = existing.ID

		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.FavoriteItemModel{}).
		Where("id = ?", existing.ID).
		Updates(map[string]any{
			"item_name":         favoriteM.ItemName,
			"brand":             favoriteM.Brand,
			"category":          favoriteM.Category,
			"is_brand_specific": favoriteM.IsBrandSpecific,
			"is_organic":        favoriteM.IsOrganic,
			"source":            favoriteM.Source,
			"added_at":          favoriteM.AddedAt,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update favorite")
	}

	favorite.ID = existing.ID

	return nil
}

// FindFavoritesByConsumer returns every favorite for one consumer.
func (repo *favoriteRepository) FindFavoritesByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.FavoriteItem, error) {
	var favoriteModels []*model.FavoriteItemModel

	if err := repo.db.WithContext(ctx).
		Where("consumer_id = ?", consumerID).
		Order("added_at DESC").
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by consumer")
	}

	favorites := make([]*entity.FavoriteItem, 0, len(favoriteModels))
	for _, favoriteM := range favoriteModels {
		favorites = append(favorites, toFavoriteDomain(favoriteM))
	}

	return favorites, nil
}

// FindFavoritesByConsumers returns the favorites of many consumers in one
// query, keyed by consumer ID.
func (repo *favoriteRepository) FindFavoritesByConsumers(ctx context.Context, consumerIDs []uuid.UUID) (map[uuid.UUID][]*entity.FavoriteItem, error) {
	favoritesByConsumer := make(map[uuid.UUID][]*entity.FavoriteItem, len(consumerIDs))
	if len(consumerIDs) == 0 {
		return favoritesByConsumer, nil
	}

	var favoriteModels []*model.FavoriteItemModel

	if err := repo.db.WithContext(ctx).
		Where("consumer_id IN ?", consumerIDs).
		Find(&favoriteModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find favorites by consumers")
	}

	for _, favoriteM := range favoriteModels {
		favoritesByConsumer[favoriteM.ConsumerID] = append(favoritesByConsumer[favoriteM.ConsumerID], toFavoriteDomain(favoriteM))
	}

	return favoritesByConsumer, nil
}

// DeleteFavoriteByName removes the consumer's favorites with the given
// normalized item name, regardless of brand or source.
func (repo *favoriteRepository) DeleteFavoriteByName(ctx context.Context, consumerID uuid.UUID, nameKey string) error {
	result := repo.db.WithContext(ctx).
		Where("consumer_id = ? AND item_key = ?", consumerID, nameKey).
		Delete(&model.FavoriteItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// CountDistinctPurchaseDays returns, per item key, the number of distinct
// calendar days the consumer purchased the item within the trailing window.
func (repo *favoriteRepository) CountDistinctPurchaseDays(ctx context.Context, consumerID uuid.UUID, keys []string, windowDays int) (map[string]int, error) {
	counts := make(map[string]int, len(keys))
	if len(keys) == 0 {
		return counts, nil
	}

	windowStart := time.Now().AddDate(0, 0, -windowDays)

	type dayCount struct {
		ItemKey string
		Days    int
	}
	var rows []dayCount

	if err := repo.db.WithContext(ctx).
		Model(&model.PurchaseModel{}).
		Select("item_key, COUNT(DISTINCT DATE(purchased_at)) AS days").
		Where("consumer_id = ? AND item_key IN ? AND purchased_at >= ?", consumerID, keys, windowStart).
		Group("item_key").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count distinct purchase days")
	}

	for _, row := range rows {
		counts[row.ItemKey] = row.Days
	}

	return counts, nil
}

// RecordPurchase appends one purchase event.
func (repo *favoriteRepository) RecordPurchase(ctx context.Context, purchase *entity.Purchase) error {
	purchaseM := &model.PurchaseModel{
		ID:          purchase.ID,
		ConsumerID:  purchase.ConsumerID,
		ItemKey:     purchase.ItemKey,
		ItemName:    purchase.ItemName,
		PurchasedAt: purchase.PurchasedAt,
	}

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record purchase")
	}

	return nil
}

// --- Mapper Functions ---

// toFavoriteDomain converts a GORM FavoriteItemModel to a domain FavoriteItem entity.
func toFavoriteDomain(data *model.FavoriteItemModel) *entity.FavoriteItem {
	if data == nil {
		return nil
	}

	return &entity.FavoriteItem{
		ID:              data.ID,
		ConsumerID:      data.ConsumerID,
		ItemName:        data.ItemName,
		Brand:           data.Brand,
		Category:        data.Category,
		IsBrandSpecific: data.IsBrandSpecific,
		IsOrganic:       data.IsOrganic,
		Source:          entity.FavoriteSource(data.Source),
		AddedAt:         data.AddedAt,
	}
}

// fromFavoriteDomain converts a domain FavoriteItem entity to a GORM FavoriteItemModel.
func fromFavoriteDomain(data *entity.FavoriteItem) *model.FavoriteItemModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteItemModel{
		ID:              data.ID,
		ConsumerID:      data.ConsumerID,
		ItemKey:         entity.NormalizeFavoriteKey(data.ItemName),
		BrandKey:        entity.NormalizeFavoriteKey(data.Brand),
		ItemName:        data.ItemName,
		Brand:           data.Brand,
		Category:        data.Category,
		IsBrandSpecific: data.IsBrandSpecific,
		IsOrganic:       data.IsOrganic,
		Source:          string(data.Source),
		AddedAt:         data.AddedAt,
	}
}
