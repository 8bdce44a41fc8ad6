package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/classify"
	deliverycontext "github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/context"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	domainerrors "github.com/alfredtoussaint-cpu/dealshaq/internal/domain/errors"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/repository"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/errors"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"
)

// purchaseWindowDays is the trailing window for auto-favorite day
// counting. The distinct-day counts themselves come from the purchase
// log, fed by the order-history collaborator.
const purchaseWindowDays = 30

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	consumerRepo repository.ConsumerRepository
	locks        *keyedMutex
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for favoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	ConsumerRepo repository.ConsumerRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		consumerRepo: params.ConsumerRepo,
		locks:        newKeyedMutex(),
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddFavorite classifies the raw item and stores it as a manual favorite.
func (srv *favoriteService) AddFavorite(ctx context.Context, input *usecase.AddFavoriteInput) (*entity.FavoriteItem, error) {
	unlock := srv.locks.Lock(input.ConsumerID)
	defer unlock()

	favorite := favoriteFromRaw(input.ConsumerID, input.RawItem, entity.FavoriteSourceManual)
	if favorite.ItemName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("item name must not be empty")
	}

	if err := srv.favoriteRepo.UpsertFavorite(ctx, favorite); err != nil {
		return nil, errors.Wrap(err, "failed to store favorite")
	}

	srv.log(ctx).Debug("Favorite added",
		slog.String("consumer_id", input.ConsumerID.String()),
		slog.String("item", favorite.ItemName),
		slog.String("category", favorite.Category))

	return favorite, nil
}

func (srv *favoriteService) ListFavorites(ctx context.Context, consumerID uuid.UUID) ([]*entity.FavoriteItem, error) {
	favorites, err := srv.favoriteRepo.FindFavoritesByConsumer(ctx, consumerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}

// RemoveFavorite deletes by the classified item's normalized name, so
// "Valley Farm Milk" and "milk" remove the same entry set.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, consumerID uuid.UUID, rawItem string) error {
	unlock := srv.locks.Lock(consumerID)
	defer unlock()

	result := classify.Classify(rawItem)
	key := entity.NormalizeFavoriteKey(result.Name)
	if key == "" {
		return domainerrors.ErrValidationFailed.WithDetails("item name must not be empty")
	}

	if err := srv.favoriteRepo.DeleteFavoriteByName(ctx, consumerID, key); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			return domainerrors.ErrFavoriteNotFound
		}

		return errors.Wrap(err, "failed to delete favorite")
	}

	return nil
}

// RecordPurchase logs the purchase and auto-favorites the item once the
// consumer has bought it on enough distinct days. A zero threshold
// disables auto-favoriting.
func (srv *favoriteService) RecordPurchase(ctx context.Context, input *usecase.RecordPurchaseInput) error {
	unlock := srv.locks.Lock(input.ConsumerID)
	defer unlock()

	result := classify.Classify(input.RawItem)
	key := entity.NormalizeFavoriteKey(result.Name)
	if key == "" {
		return domainerrors.ErrValidationFailed.WithDetails("item name must not be empty")
	}

	purchasedAt := input.PurchasedAt
	if purchasedAt.IsZero() {
		purchasedAt = time.Now()
	}

	purchase := &entity.Purchase{
		ID:          uuid.New(),
		ConsumerID:  input.ConsumerID,
		ItemKey:     key,
		ItemName:    result.Name,
		PurchasedAt: purchasedAt,
	}
	if err := srv.favoriteRepo.RecordPurchase(ctx, purchase); err != nil {
		return errors.Wrap(err, "failed to record purchase")
	}

	consumer, err := srv.consumerRepo.FindConsumerByID(ctx, input.ConsumerID)
	if err != nil {
		if errors.Is(err, repository.ErrConsumerNotFound) {
			return domainerrors.ErrConsumerNotFound
		}

		return errors.Wrap(err, "failed to load consumer for purchase")
	}

	threshold := consumer.AutoFavoriteThresholdDays
	if threshold == 0 {
		return nil
	}

	days, err := srv.favoriteRepo.CountDistinctPurchaseDays(ctx, input.ConsumerID, []string{key}, purchaseWindowDays)
	if err != nil {
		return errors.Wrap(err, "failed to count purchase days")
	}
	if days[key] < threshold {
		return nil
	}

	favorite := favoriteFromRaw(input.ConsumerID, input.RawItem, entity.FavoriteSourceAuto)
	if err := srv.favoriteRepo.UpsertFavorite(ctx, favorite); err != nil {
		return errors.Wrap(err, "failed to auto-favorite item")
	}

	srv.log(ctx).Info("Item auto-favorited",
		slog.String("consumer_id", input.ConsumerID.String()),
		slog.String("item", favorite.ItemName),
		slog.Int("distinct_days", days[key]))

	return nil
}

// favoriteFromRaw classifies the raw item text into a favorite entry.
func favoriteFromRaw(consumerID uuid.UUID, rawItem string, source entity.FavoriteSource) *entity.FavoriteItem {
	result := classify.Classify(rawItem)

	return &entity.FavoriteItem{
		ID:              uuid.New(),
		ConsumerID:      consumerID,
		ItemName:        result.Name,
		Brand:           result.Brand,
		Category:        result.Category,
		IsBrandSpecific: result.IsBrandSpecific,
		IsOrganic:       result.IsOrganic,
		Source:          source,
		AddedAt:         time.Now(),
	}
}
