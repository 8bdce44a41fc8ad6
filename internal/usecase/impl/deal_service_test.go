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

	"github.com/alfredtoussaint-cpu/dealshaq/config"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/classify"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	domainerrors "github.com/alfredtoussaint-cpu/dealshaq/internal/domain/errors"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/repository"
	mockRepo "github.com/alfredtoussaint-cpu/dealshaq/internal/mocks/repository"
	mockSvc "github.com/alfredtoussaint-cpu/dealshaq/internal/mocks/service"
	mockUC "github.com/alfredtoussaint-cpu/dealshaq/internal/mocks/usecase"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"
)

type dealServiceFixture struct {
	service          usecase.DealUsecase
	dealRepo         *mockRepo.MockDealRepository
	retailerRepo     *mockRepo.MockRetailerRepository
	rosterRepo       *mockRepo.MockRosterRepository
	favoriteRepo     *mockRepo.MockFavoriteRepository
	notificationRepo *mockRepo.MockNotificationRepository
	hub              *mockSvc.MockDeliveryHub
	favorites        *mockUC.MockFavoriteUsecase
}

func createTestDealService(t *testing.T) *dealServiceFixture {
	fx := &dealServiceFixture{
		dealRepo:         mockRepo.NewMockDealRepository(t),
		retailerRepo:     mockRepo.NewMockRetailerRepository(t),
		rosterRepo:       mockRepo.NewMockRosterRepository(t),
		favoriteRepo:     mockRepo.NewMockFavoriteRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		hub:              mockSvc.NewMockDeliveryHub(t),
		favorites:        mockUC.NewMockFavoriteUsecase(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx.service = NewDealService(DealServiceParams{
		DealRepo:         fx.dealRepo,
		RetailerRepo:     fx.retailerRepo,
		RosterRepo:       fx.rosterRepo,
		FavoriteRepo:     fx.favoriteRepo,
		NotificationRepo: fx.notificationRepo,
		Hub:              fx.hub,
		Favorites:        fx.favorites,
		Config:           &config.Config{Match: &config.MatchConfig{Workers: 4}},
		Logger:           logger,
	})

	return fx
}

func liveRetailer() *entity.Retailer {
	return &entity.Retailer{
		ID:          uuid.New(),
		StoreName:   "Corner Market",
		Coordinates: &entity.Coordinates{Latitude: 40.01, Longitude: -75.0},
		StoreStatus: entity.StoreLive,
		Active:      true,
	}
}

func milkFavorite(consumerID uuid.UUID) *entity.FavoriteItem {
	return &entity.FavoriteItem{
		ID:         uuid.New(),
		ConsumerID: consumerID,
		ItemName:   "Milk",
		Category:   classify.CategoryDairyEggs,
		Source:     entity.FavoriteSourceManual,
	}
}

func TestDealService_PostDeal_SandboxStoreNeverNotifies(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	sandbox := liveRetailer()
	sandbox.StoreStatus = entity.StoreSandbox
	fx.retailerRepo.EXPECT().FindRetailerByID(ctx, sandbox.ID).Return(sandbox, nil)
	// The deal is stored so the readiness checklist can count it, but the
	// fan-out never runs: no roster lookup, no notifications.
	fx.dealRepo.EXPECT().CreateDeal(ctx, mock.Anything).Return(nil)

	out, err := fx.service.PostDeal(ctx, &usecase.PostDealInput{
		RetailerID:    sandbox.ID,
		RawItem:       "Milk",
		RegularPrice:  4.0,
		DiscountLevel: 1,
		Quantity:      10,
		Expiry:        time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Zero(t, out.MatchedConsumers)
	assert.Zero(t, out.StoredNotifications)
}

func TestDealService_PostDeal_SuspendedStoreRejectedImmediately(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	suspended := liveRetailer()
	suspended.StoreStatus = entity.StoreSuspended
	fx.retailerRepo.EXPECT().FindRetailerByID(ctx, suspended.ID).Return(suspended, nil)

	_, err := fx.service.PostDeal(ctx, &usecase.PostDealInput{
		RetailerID:    suspended.ID,
		RawItem:       "Milk",
		RegularPrice:  4.0,
		DiscountLevel: 1,
		Quantity:      10,
		Expiry:        time.Now().Add(24 * time.Hour),
	})
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotLive)
}

func TestDealService_PostDeal_InvalidDiscountLevel(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	retailer := liveRetailer()
	fx.retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)

	_, err := fx.service.PostDeal(ctx, &usecase.PostDealInput{
		RetailerID:    retailer.ID,
		RawItem:       "Milk",
		RegularPrice:  4.0,
		DiscountLevel: 4,
		Quantity:      10,
		Expiry:        time.Now().Add(24 * time.Hour),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidDiscountLevel)
}

func TestDealService_PostDeal_NotifiesMatchingConsumer(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	retailer := liveRetailer()
	shopper := uuid.New()
	bystander := uuid.New()

	fx.retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	fx.dealRepo.EXPECT().CreateDeal(ctx, mock.Anything).Run(func(_ context.Context, deal *entity.Deal) {
		assert.Equal(t, "Milk", deal.Name)
		assert.Equal(t, "Valley Farm", deal.Brand)
		assert.Equal(t, classify.CategoryDairyEggs, deal.Category)
		assert.Equal(t, 50.0, deal.ConsumerDiscountPercent)
		assert.Equal(t, 60.0, deal.RetailerDiscountPercent)
		assert.Equal(t, 2.0, deal.DealPrice)
	}).Return(nil)
	fx.rosterRepo.EXPECT().FindVisibleConsumerIDsByRetailer(ctx, retailer.ID).
		Return([]uuid.UUID{shopper, bystander}, nil)
	// The bystander favorites a different category and must stay silent.
	fx.favoriteRepo.EXPECT().FindFavoritesByConsumers(ctx, []uuid.UUID{shopper, bystander}).
		Return(map[uuid.UUID][]*entity.FavoriteItem{
			shopper: {milkFavorite(shopper)},
			bystander: {{
				ConsumerID: bystander,
				ItemName:   "Granola",
				Category:   classify.CategoryBreakfast,
			}},
		}, nil)
	fx.notificationRepo.EXPECT().CreateNotification(mock.Anything, mock.Anything).
		Run(func(_ context.Context, notification *entity.Notification) {
			assert.Equal(t, shopper, notification.ConsumerID)
			assert.Equal(t, "New deal on Milk - 50% off at Corner Market!", notification.Message)
			assert.False(t, notification.Read)
		}).Return(nil).Once()
	fx.hub.EXPECT().Push(mock.Anything, shopper, mock.Anything).Return(true).Once()

	out, err := fx.service.PostDeal(ctx, &usecase.PostDealInput{
		RetailerID:    retailer.ID,
		RawItem:       "Valley Farm, Milk",
		RegularPrice:  4.0,
		DiscountLevel: 1,
		Quantity:      10,
		Expiry:        time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.MatchedConsumers)
	assert.Equal(t, 1, out.StoredNotifications)
	assert.Equal(t, 1, out.PushedLive)
}

func TestDealService_PostDeal_BrandSpecificFavoriteIgnoresOtherBrands(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	retailer := liveRetailer()
	shopper := uuid.New()

	brandFan := milkFavorite(shopper)
	brandFan.Brand = "Hilltop Dairy"
	brandFan.IsBrandSpecific = true

	fx.retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	fx.dealRepo.EXPECT().CreateDeal(ctx, mock.Anything).Return(nil)
	fx.rosterRepo.EXPECT().FindVisibleConsumerIDsByRetailer(ctx, retailer.ID).
		Return([]uuid.UUID{shopper}, nil)
	fx.favoriteRepo.EXPECT().FindFavoritesByConsumers(ctx, []uuid.UUID{shopper}).
		Return(map[uuid.UUID][]*entity.FavoriteItem{shopper: {brandFan}}, nil)

	out, err := fx.service.PostDeal(ctx, &usecase.PostDealInput{
		RetailerID:    retailer.ID,
		RawItem:       "Valley Farm, Milk",
		RegularPrice:  4.0,
		DiscountLevel: 1,
		Quantity:      10,
		Expiry:        time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Zero(t, out.MatchedConsumers)
	assert.Zero(t, out.StoredNotifications)
}

func TestDealService_PostDeal_DuplicateNotificationIsSkipped(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	retailer := liveRetailer()
	shopper := uuid.New()

	fx.retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	fx.dealRepo.EXPECT().CreateDeal(ctx, mock.Anything).Return(nil)
	fx.rosterRepo.EXPECT().FindVisibleConsumerIDsByRetailer(ctx, retailer.ID).
		Return([]uuid.UUID{shopper}, nil)
	fx.favoriteRepo.EXPECT().FindFavoritesByConsumers(ctx, []uuid.UUID{shopper}).
		Return(map[uuid.UUID][]*entity.FavoriteItem{shopper: {milkFavorite(shopper)}}, nil)
	fx.notificationRepo.EXPECT().CreateNotification(mock.Anything, mock.Anything).
		Return(repository.ErrDuplicateNotification)

	out, err := fx.service.PostDeal(ctx, &usecase.PostDealInput{
		RetailerID:    retailer.ID,
		RawItem:       "Milk",
		RegularPrice:  4.0,
		DiscountLevel: 1,
		Quantity:      10,
		Expiry:        time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err, "a replayed match run must not fail on existing notifications")
	assert.Equal(t, 1, out.MatchedConsumers)
	assert.Zero(t, out.StoredNotifications)
	assert.Zero(t, out.PushedLive)
}

func TestDealService_PostDeal_OfflineConsumerKeepsStoredNotification(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	retailer := liveRetailer()
	shopper := uuid.New()

	fx.retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	fx.dealRepo.EXPECT().CreateDeal(ctx, mock.Anything).Return(nil)
	fx.rosterRepo.EXPECT().FindVisibleConsumerIDsByRetailer(ctx, retailer.ID).
		Return([]uuid.UUID{shopper}, nil)
	fx.favoriteRepo.EXPECT().FindFavoritesByConsumers(ctx, []uuid.UUID{shopper}).
		Return(map[uuid.UUID][]*entity.FavoriteItem{shopper: {milkFavorite(shopper)}}, nil)
	fx.notificationRepo.EXPECT().CreateNotification(mock.Anything, mock.Anything).Return(nil)
	fx.hub.EXPECT().Push(mock.Anything, shopper, mock.Anything).Return(false)

	out, err := fx.service.PostDeal(ctx, &usecase.PostDealInput{
		RetailerID:    retailer.ID,
		RawItem:       "Milk",
		RegularPrice:  4.0,
		DiscountLevel: 1,
		Quantity:      10,
		Expiry:        time.Now().Add(24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.StoredNotifications)
	assert.Zero(t, out.PushedLive, "an offline consumer still keeps the stored notification")
}

func TestDealService_RemoveDeal_RetailerCannotTouchForeignDeal(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	deal := &entity.Deal{ID: uuid.New(), RetailerID: uuid.New(), Status: entity.DealAvailable}
	fx.dealRepo.EXPECT().FindDealByID(ctx, deal.ID).Return(deal, nil)

	err := fx.service.RemoveDeal(ctx, uuid.New(), deal.ID, false)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDealService_RemoveDeal_AdminRemoval(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	deal := &entity.Deal{ID: uuid.New(), RetailerID: uuid.New(), Status: entity.DealAvailable}
	fx.dealRepo.EXPECT().FindDealByID(ctx, deal.ID).Return(deal, nil)
	fx.dealRepo.EXPECT().UpdateDealStatus(ctx, deal.ID, entity.DealAdminRemoved).Return(nil)

	require.NoError(t, fx.service.RemoveDeal(ctx, uuid.New(), deal.ID, true))
}

func TestDealService_ClaimDeal_DecrementsAndRecordsPurchase(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	consumerID := uuid.New()
	deal := &entity.Deal{
		ID:         uuid.New(),
		RetailerID: uuid.New(),
		Name:       "Milk",
		Brand:      "Valley Farm",
		Quantity:   3,
		Status:     entity.DealAvailable,
		Expiry:     time.Now().Add(time.Hour),
	}

	fx.dealRepo.EXPECT().FindDealByID(ctx, deal.ID).Return(deal, nil).Twice()
	fx.dealRepo.EXPECT().DecrementQuantity(ctx, deal.ID, 1).Return(nil)
	fx.favorites.EXPECT().RecordPurchase(ctx, mock.Anything).
		Run(func(_ context.Context, input *usecase.RecordPurchaseInput) {
			assert.Equal(t, consumerID, input.ConsumerID)
			assert.Equal(t, "Valley Farm, Milk", input.RawItem)
		}).Return(nil)

	_, err := fx.service.ClaimDeal(ctx, consumerID, deal.ID)
	require.NoError(t, err)
}

func TestDealService_ClaimDeal_SoldOut(t *testing.T) {
	fx := createTestDealService(t)
	ctx := context.Background()

	deal := &entity.Deal{
		ID:     uuid.New(),
		Status: entity.DealAvailable,
		Expiry: time.Now().Add(time.Hour),
	}
	fx.dealRepo.EXPECT().FindDealByID(ctx, deal.ID).Return(deal, nil)
	fx.dealRepo.EXPECT().DecrementQuantity(ctx, deal.ID, 1).Return(repository.ErrDealSoldOut)

	_, err := fx.service.ClaimDeal(ctx, uuid.New(), deal.ID)
	assert.ErrorIs(t, err, domainerrors.ErrDealSoldOut)
}
