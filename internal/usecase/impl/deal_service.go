package impl

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"github.com/alfredtoussaint-cpu/dealshaq/config"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/classify"
	deliverycontext "github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/context"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	domainerrors "github.com/alfredtoussaint-cpu/dealshaq/internal/domain/errors"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/repository"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/service"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/errors"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"
)

const defaultMatchWorkers = 8

// dealService implements the DealUsecase interface, including the
// notification fan-out that follows each posted deal.
type dealService struct {
	dealRepo         repository.DealRepository
	retailerRepo     repository.RetailerRepository
	rosterRepo       repository.RosterRepository
	favoriteRepo     repository.FavoriteRepository
	notificationRepo repository.NotificationRepository
	hub              service.DeliveryHub
	favorites        usecase.FavoriteUsecase
	matchWorkers     int
	logger           *slog.Logger
}

// DealServiceParams holds dependencies for dealService, injected by Fx.
type DealServiceParams struct {
	fx.In

	DealRepo         repository.DealRepository
	RetailerRepo     repository.RetailerRepository
	RosterRepo       repository.RosterRepository
	FavoriteRepo     repository.FavoriteRepository
	NotificationRepo repository.NotificationRepository
	Hub              service.DeliveryHub
	Favorites        usecase.FavoriteUsecase
	Config           *config.Config
	Logger           *slog.Logger
}

// NewDealService is the constructor for dealService.
func NewDealService(params DealServiceParams) usecase.DealUsecase {
	workers := defaultMatchWorkers
	if params.Config != nil && params.Config.Match != nil && params.Config.Match.Workers > 0 {
		workers = params.Config.Match.Workers
	}

	return &dealService{
		dealRepo:         params.DealRepo,
		retailerRepo:     params.RetailerRepo,
		rosterRepo:       params.RosterRepo,
		favoriteRepo:     params.FavoriteRepo,
		notificationRepo: params.NotificationRepo,
		hub:              params.Hub,
		favorites:        params.Favorites,
		matchWorkers:     workers,
		logger:           params.Logger,
	}
}

func (srv *dealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PostDeal validates and stores the deal, then fans notifications out to
// every consumer whose visible roster includes the retailer and whose
// favorites match the classified item.
func (srv *dealService) PostDeal(ctx context.Context, input *usecase.PostDealInput) (*usecase.PostDealOutput, error) {
	retailer, err := srv.retailerRepo.FindRetailerByID(ctx, input.RetailerID)
	if err != nil {
		if errors.Is(err, repository.ErrRetailerNotFound) {
			return nil, domainerrors.ErrRetailerNotFound
		}

		return nil, errors.Wrap(err, "failed to load retailer for deal")
	}

	// Store status is checked fresh on every post; a suspension takes
	// effect immediately.
	if !retailer.Active || !retailer.StoreStatus.CanPostDeals() {
		return nil, domainerrors.ErrStoreNotLive
	}

	retailerPct, consumerPct, err := entity.DiscountForLevel(input.DiscountLevel)
	if err != nil {
		return nil, domainerrors.ErrInvalidDiscountLevel
	}
	if input.RegularPrice <= 0 || input.Quantity <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price and quantity must be positive")
	}

	item := classify.Classify(input.RawItem)
	if item.Name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("item name must not be empty")
	}

	deal := &entity.Deal{
		ID:                      uuid.New(),
		RetailerID:              retailer.ID,
		Name:                    item.Name,
		Category:                item.Category,
		Brand:                   item.Brand,
		RegularPrice:            input.RegularPrice,
		DealPrice:               entity.DealPrice(input.RegularPrice, consumerPct),
		DiscountLevel:           input.DiscountLevel,
		RetailerDiscountPercent: retailerPct,
		ConsumerDiscountPercent: consumerPct,
		Quantity:                input.Quantity,
		Expiry:                  input.Expiry,
		Status:                  entity.DealAvailable,
		PostedAt:                time.Now(),
	}

	if err := srv.dealRepo.CreateDeal(ctx, deal); err != nil {
		return nil, errors.Wrap(err, "failed to store deal")
	}

	// Only live stores generate notifications; a sandbox store's deals
	// exist solely to satisfy the go-live checklist.
	var matched, stored, pushed int
	if retailer.StoreStatus == entity.StoreLive {
		matched, stored, pushed, err = srv.runMatching(ctx, deal, retailer.StoreName)
		if err != nil {
			return nil, err
		}
	}

	srv.log(ctx).Info("Deal posted",
		slog.String("retailer_id", retailer.ID.String()),
		slog.String("deal_id", deal.ID.String()),
		slog.String("category", deal.Category),
		slog.Int("matched", matched),
		slog.Int("stored", stored),
		slog.Int("pushed", pushed))

	return &usecase.PostDealOutput{
		Deal:                deal,
		MatchedConsumers:    matched,
		StoredNotifications: stored,
		PushedLive:          pushed,
	}, nil
}

// runMatching fans out over the retailer's visible audience with a
// bounded worker pool. The run is idempotent: the (consumer, deal)
// uniqueness rule absorbs replays, so a partial failure can simply be
// retried.
func (srv *dealService) runMatching(ctx context.Context, deal *entity.Deal, storeName string) (matched, stored, pushed int, err error) {
	consumerIDs, err := srv.rosterRepo.FindVisibleConsumerIDsByRetailer(ctx, deal.RetailerID)
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "failed to load deal audience")
	}
	if len(consumerIDs) == 0 {
		return 0, 0, 0, nil
	}

	favoritesByConsumer, err := srv.favoriteRepo.FindFavoritesByConsumers(ctx, consumerIDs)
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "failed to load audience favorites")
	}

	var matchedCount, storedCount, pushedCount atomic.Int64

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(srv.matchWorkers)

	for _, consumerID := range consumerIDs {
		favorites := favoritesByConsumer[consumerID]
		if !anyMatch(favorites, deal) {
			continue
		}
		matchedCount.Add(1)

		group.Go(func() error {
			notification := entity.NewDealNotification(consumerID, deal, storeName)

			if err := srv.notificationRepo.CreateNotification(groupCtx, notification); err != nil {
				if errors.Is(err, repository.ErrDuplicateNotification) {
					srv.log(groupCtx).Debug("Notification already exists, skipping",
						slog.String("consumer_id", consumerID.String()),
						slog.String("deal_id", deal.ID.String()))

					return nil
				}

				return errors.Wrap(err, "failed to store notification")
			}
			storedCount.Add(1)

			if srv.hub.Push(groupCtx, consumerID, notification) {
				pushedCount.Add(1)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return 0, 0, 0, errors.Wrap(err, "notification fan-out failed")
	}

	return int(matchedCount.Load()), int(storedCount.Load()), int(pushedCount.Load()), nil
}

// anyMatch reports whether at least one favorite matches the deal.
// Multiple matching favorites still produce a single notification.
func anyMatch(favorites []*entity.FavoriteItem, deal *entity.Deal) bool {
	for _, favorite := range favorites {
		if favorite.MatchesDeal(deal) {
			return true
		}
	}

	return false
}

func (srv *dealService) ListRetailerDeals(ctx context.Context, retailerID uuid.UUID) ([]*entity.Deal, error) {
	deals, err := srv.dealRepo.FindDealsByRetailer(ctx, retailerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list retailer deals")
	}

	return deals, nil
}

// RemoveDeal takes a deal off the market. Retailers may only withdraw
// their own deals; admins may remove any deal outright.
func (srv *dealService) RemoveDeal(ctx context.Context, actorID, dealID uuid.UUID, asAdmin bool) error {
	deal, err := srv.dealRepo.FindDealByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return domainerrors.ErrDealNotFound
		}

		return errors.Wrap(err, "failed to load deal")
	}

	next := entity.DealUnavailable
	if asAdmin {
		next = entity.DealAdminRemoved
	} else if deal.RetailerID != actorID {
		return domainerrors.ErrForbidden
	}

	if !deal.Status.CanTransitionTo(next) {
		return domainerrors.ErrInvalidStatusTransition
	}

	if err := srv.dealRepo.UpdateDealStatus(ctx, dealID, next); err != nil {
		return errors.Wrap(err, "failed to update deal status")
	}

	return nil
}

// ClaimDeal decrements the deal's remaining quantity and records the
// purchase for auto-favorite tracking.
func (srv *dealService) ClaimDeal(ctx context.Context, consumerID, dealID uuid.UUID) (*entity.Deal, error) {
	deal, err := srv.dealRepo.FindDealByID(ctx, dealID)
	if err != nil {
		if errors.Is(err, repository.ErrDealNotFound) {
			return nil, domainerrors.ErrDealNotFound
		}

		return nil, errors.Wrap(err, "failed to load deal")
	}

	if deal.Status != entity.DealAvailable || time.Now().After(deal.Expiry) {
		return nil, domainerrors.ErrDealSoldOut
	}

	if err := srv.dealRepo.DecrementQuantity(ctx, dealID, 1); err != nil {
		if errors.Is(err, repository.ErrDealSoldOut) {
			return nil, domainerrors.ErrDealSoldOut
		}

		return nil, errors.Wrap(err, "failed to decrement deal quantity")
	}

	rawItem := deal.Name
	if deal.Brand != "" {
		rawItem = deal.Brand + ", " + deal.Name
	}
	if err := srv.favorites.RecordPurchase(ctx, &usecase.RecordPurchaseInput{
		ConsumerID: consumerID,
		RawItem:    rawItem,
	}); err != nil {
		// The claim already went through; purchase tracking is advisory.
		srv.log(ctx).Warn("Failed to record purchase for claimed deal",
			slog.String("deal_id", dealID.String()), slog.Any("error", err))
	}

	return srv.dealRepo.FindDealByID(ctx, dealID)
}
