package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/classify"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	mockRepo "github.com/alfredtoussaint-cpu/dealshaq/internal/mocks/repository"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"
)

func createTestFavoriteService(t *testing.T) (
	usecase.FavoriteUsecase,
	*mockRepo.MockFavoriteRepository,
	*mockRepo.MockConsumerRepository,
) {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	consumerRepo := mockRepo.NewMockConsumerRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: favoriteRepo,
		ConsumerRepo: consumerRepo,
		Logger:       logger,
	})

	return service, favoriteRepo, consumerRepo
}

func TestFavoriteService_AddFavorite_ClassifiesBrandedItem(t *testing.T) {
	service, favoriteRepo, _ := createTestFavoriteService(t)
	ctx := context.Background()
	consumerID := uuid.New()

	favoriteRepo.EXPECT().UpsertFavorite(ctx, mock.Anything).Return(nil)

	favorite, err := service.AddFavorite(ctx, &usecase.AddFavoriteInput{
		ConsumerID: consumerID,
		RawItem:    "Valley Farm, Organic Milk",
	})
	require.NoError(t, err)

	assert.Equal(t, "Organic Milk", favorite.ItemName)
	assert.Equal(t, "Valley Farm", favorite.Brand)
	assert.Equal(t, classify.CategoryDairyEggs, favorite.Category)
	assert.True(t, favorite.IsBrandSpecific)
	assert.True(t, favorite.IsOrganic)
	assert.Equal(t, entity.FavoriteSourceManual, favorite.Source)
}

func TestFavoriteService_AddFavorite_GenericItem(t *testing.T) {
	service, favoriteRepo, _ := createTestFavoriteService(t)
	ctx := context.Background()

	favoriteRepo.EXPECT().UpsertFavorite(ctx, mock.Anything).Return(nil)

	favorite, err := service.AddFavorite(ctx, &usecase.AddFavoriteInput{
		ConsumerID: uuid.New(),
		RawItem:    "Granola",
	})
	require.NoError(t, err)

	assert.Equal(t, "Granola", favorite.ItemName)
	assert.Empty(t, favorite.Brand)
	assert.False(t, favorite.IsBrandSpecific)
}

func TestFavoriteService_AddFavorite_RejectsEmptyName(t *testing.T) {
	service, _, _ := createTestFavoriteService(t)

	_, err := service.AddFavorite(context.Background(), &usecase.AddFavoriteInput{
		ConsumerID: uuid.New(),
		RawItem:    "   ",
	})
	assert.Error(t, err)
}

func TestFavoriteService_RemoveFavorite_UsesNormalizedName(t *testing.T) {
	service, favoriteRepo, _ := createTestFavoriteService(t)
	ctx := context.Background()
	consumerID := uuid.New()

	favoriteRepo.EXPECT().DeleteFavoriteByName(ctx, consumerID, "granola").Return(nil)

	require.NoError(t, service.RemoveFavorite(ctx, consumerID, "  GRANOLA "))
}

func TestFavoriteService_RecordPurchase_ThresholdZeroNeverAutoAdds(t *testing.T) {
	service, favoriteRepo, consumerRepo := createTestFavoriteService(t)
	ctx := context.Background()

	consumer := &entity.Consumer{ID: uuid.New(), AutoFavoriteThresholdDays: 0, Active: true}

	favoriteRepo.EXPECT().RecordPurchase(ctx, mock.Anything).Return(nil)
	consumerRepo.EXPECT().FindConsumerByID(ctx, consumer.ID).Return(consumer, nil)
	// No day counting and no upsert may happen with the feature disabled.

	require.NoError(t, service.RecordPurchase(ctx, &usecase.RecordPurchaseInput{
		ConsumerID:  consumer.ID,
		RawItem:     "Granola",
		PurchasedAt: time.Now(),
	}))
}

func TestFavoriteService_RecordPurchase_AutoAddsAtThreshold(t *testing.T) {
	service, favoriteRepo, consumerRepo := createTestFavoriteService(t)
	ctx := context.Background()

	consumer := &entity.Consumer{ID: uuid.New(), AutoFavoriteThresholdDays: 3, Active: true}

	favoriteRepo.EXPECT().RecordPurchase(ctx, mock.Anything).Return(nil)
	consumerRepo.EXPECT().FindConsumerByID(ctx, consumer.ID).Return(consumer, nil)
	favoriteRepo.EXPECT().CountDistinctPurchaseDays(ctx, consumer.ID, []string{"granola"}, mock.Anything).
		Return(map[string]int{"granola": 3}, nil)
	favoriteRepo.EXPECT().UpsertFavorite(ctx, mock.Anything).Run(func(_ context.Context, favorite *entity.FavoriteItem) {
		assert.Equal(t, entity.FavoriteSourceAuto, favorite.Source)
		assert.Equal(t, "Granola", favorite.ItemName)
	}).Return(nil)

	require.NoError(t, service.RecordPurchase(ctx, &usecase.RecordPurchaseInput{
		ConsumerID:  consumer.ID,
		RawItem:     "Granola",
		PurchasedAt: time.Now(),
	}))
}

func TestFavoriteService_RecordPurchase_BelowThreshold(t *testing.T) {
	service, favoriteRepo, consumerRepo := createTestFavoriteService(t)
	ctx := context.Background()

	consumer := &entity.Consumer{ID: uuid.New(), AutoFavoriteThresholdDays: 6, Active: true}

	favoriteRepo.EXPECT().RecordPurchase(ctx, mock.Anything).Return(nil)
	consumerRepo.EXPECT().FindConsumerByID(ctx, consumer.ID).Return(consumer, nil)
	favoriteRepo.EXPECT().CountDistinctPurchaseDays(ctx, consumer.ID, []string{"granola"}, mock.Anything).
		Return(map[string]int{"granola": 5}, nil)

	require.NoError(t, service.RecordPurchase(ctx, &usecase.RecordPurchaseInput{
		ConsumerID:  consumer.ID,
		RawItem:     "Granola",
		PurchasedAt: time.Now(),
	}))
}
