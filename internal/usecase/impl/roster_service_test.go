package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	domainerrors "github.com/alfredtoussaint-cpu/dealshaq/internal/domain/errors"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/repository"
	mockRepo "github.com/alfredtoussaint-cpu/dealshaq/internal/mocks/repository"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"
)

func createTestRosterService(t *testing.T) (
	usecase.RosterUsecase,
	*mockRepo.MockRosterRepository,
	*mockRepo.MockConsumerRepository,
	*mockRepo.MockRetailerRepository,
) {
	rosterRepo := mockRepo.NewMockRosterRepository(t)
	consumerRepo := mockRepo.NewMockConsumerRepository(t)
	retailerRepo := mockRepo.NewMockRetailerRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewRosterService(RosterServiceParams{
		RosterRepo:   rosterRepo,
		ConsumerRepo: consumerRepo,
		RetailerRepo: retailerRepo,
		Logger:       logger,
	})

	return service, rosterRepo, consumerRepo, retailerRepo
}

func testConsumerAt(lat, lng, radius float64) *entity.Consumer {
	return &entity.Consumer{
		ID:    uuid.New(),
		Email: "shopper@example.com",
		Name:  "Shopper",
		DeliveryLocation: &entity.DeliveryLocation{
			Address:     "123 Main St, Philadelphia, PA",
			Coordinates: &entity.Coordinates{Latitude: lat, Longitude: lng},
		},
		RadiusMiles: radius,
		Active:      true,
	}
}

func testRetailerAt(lat, lng float64) *entity.Retailer {
	return &entity.Retailer{
		ID:          uuid.New(),
		Email:       "store@example.com",
		StoreName:   "Corner Market",
		Coordinates: &entity.Coordinates{Latitude: lat, Longitude: lng},
		StoreStatus: entity.StoreLive,
		Active:      true,
	}
}

func TestRosterService_Recompute_AddsRetailerInRange(t *testing.T) {
	service, rosterRepo, consumerRepo, retailerRepo := createTestRosterService(t)
	ctx := context.Background()

	consumer := testConsumerAt(40.0, -75.0, 5.0)
	near := testRetailerAt(40.02, -75.0)  // about 1.4 miles
	far := testRetailerAt(40.5, -75.0)    // well outside

	consumerRepo.EXPECT().FindConsumerByID(ctx, consumer.ID).Return(consumer, nil)
	rosterRepo.EXPECT().FindEntriesByConsumer(ctx, consumer.ID).Return(nil, nil)
	retailerRepo.EXPECT().FindLocatableRetailers(ctx).Return([]*entity.Retailer{near, far}, nil)
	rosterRepo.EXPECT().CreateEntry(ctx, mock.Anything).Run(func(_ context.Context, entry *entity.RosterEntry) {
		assert.Equal(t, near.ID, entry.RetailerID)
		assert.True(t, entry.InsideRadius)
		assert.False(t, entry.ManuallyAdded)
		assert.InDelta(t, 1.4, entry.DistanceMiles, 0.1)
	}).Return(nil).Once()

	visible, err := service.Recompute(ctx, consumer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, visible)
}

func TestRosterService_Recompute_IsIdempotent(t *testing.T) {
	service, rosterRepo, consumerRepo, retailerRepo := createTestRosterService(t)
	ctx := context.Background()

	consumer := testConsumerAt(40.0, -75.0, 5.0)
	near := testRetailerAt(40.02, -75.0)
	entry := &entity.RosterEntry{
		ID:            uuid.New(),
		ConsumerID:    consumer.ID,
		RetailerID:    near.ID,
		DistanceMiles: 1.38,
		InsideRadius:  true,
	}

	consumerRepo.EXPECT().FindConsumerByID(ctx, consumer.ID).Return(consumer, nil)
	rosterRepo.EXPECT().FindEntriesByConsumer(ctx, consumer.ID).Return([]*entity.RosterEntry{entry}, nil)
	retailerRepo.EXPECT().FindLocatableRetailers(ctx).Return([]*entity.Retailer{near}, nil)
	// The existing entry is refreshed in place, never duplicated.
	rosterRepo.EXPECT().UpdateEntry(ctx, entry).Return(nil).Once()

	visible, err := service.Recompute(ctx, consumer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, visible)
	assert.True(t, entry.InsideRadius)
}

func TestRosterService_Recompute_StickyRemovalSurvives(t *testing.T) {
	service, rosterRepo, consumerRepo, retailerRepo := createTestRosterService(t)
	ctx := context.Background()

	consumer := testConsumerAt(40.0, -75.0, 5.0)
	near := testRetailerAt(40.02, -75.0)
	removed := &entity.RosterEntry{
		ID:              uuid.New(),
		ConsumerID:      consumer.ID,
		RetailerID:      near.ID,
		InsideRadius:    true,
		ManuallyRemoved: true,
	}

	consumerRepo.EXPECT().FindConsumerByID(ctx, consumer.ID).Return(consumer, nil)
	rosterRepo.EXPECT().FindEntriesByConsumer(ctx, consumer.ID).Return([]*entity.RosterEntry{removed}, nil)
	retailerRepo.EXPECT().FindLocatableRetailers(ctx).Return([]*entity.Retailer{near}, nil)
	rosterRepo.EXPECT().UpdateEntry(ctx, removed).Return(nil).Once()

	visible, err := service.Recompute(ctx, consumer.ID)
	require.NoError(t, err)
	assert.Zero(t, visible)
	assert.True(t, removed.ManuallyRemoved, "a sticky removal must survive recomputation")
	assert.False(t, removed.Visible())
}

func TestRosterService_Recompute_ManualAddSurvivesRadiusShrink(t *testing.T) {
	service, rosterRepo, consumerRepo, retailerRepo := createTestRosterService(t)
	ctx := context.Background()

	consumer := testConsumerAt(40.0, -75.0, 0.5)
	pinned := testRetailerAt(40.1, -75.0) // outside the shrunken radius
	entry := &entity.RosterEntry{
		ID:            uuid.New(),
		ConsumerID:    consumer.ID,
		RetailerID:    pinned.ID,
		InsideRadius:  true,
		ManuallyAdded: true,
	}

	consumerRepo.EXPECT().FindConsumerByID(ctx, consumer.ID).Return(consumer, nil)
	rosterRepo.EXPECT().FindEntriesByConsumer(ctx, consumer.ID).Return([]*entity.RosterEntry{entry}, nil)
	retailerRepo.EXPECT().FindLocatableRetailers(ctx).Return([]*entity.Retailer{pinned}, nil)
	rosterRepo.EXPECT().UpdateEntry(ctx, entry).Return(nil).Once()

	visible, err := service.Recompute(ctx, consumer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, visible)
	assert.False(t, entry.InsideRadius)
	assert.True(t, entry.Visible(), "a pinned retailer stays visible outside the radius")
}

func TestRosterService_Recompute_PrunesFlaglessOutOfRangeEntry(t *testing.T) {
	service, rosterRepo, consumerRepo, retailerRepo := createTestRosterService(t)
	ctx := context.Background()

	consumer := testConsumerAt(40.0, -75.0, 0.5)
	gone := testRetailerAt(40.1, -75.0)
	entry := &entity.RosterEntry{
		ID:           uuid.New(),
		ConsumerID:   consumer.ID,
		RetailerID:   gone.ID,
		InsideRadius: true,
	}

	consumerRepo.EXPECT().FindConsumerByID(ctx, consumer.ID).Return(consumer, nil)
	rosterRepo.EXPECT().FindEntriesByConsumer(ctx, consumer.ID).Return([]*entity.RosterEntry{entry}, nil)
	retailerRepo.EXPECT().FindLocatableRetailers(ctx).Return([]*entity.Retailer{gone}, nil)
	rosterRepo.EXPECT().DeleteEntry(ctx, consumer.ID, gone.ID).Return(nil).Once()

	visible, err := service.Recompute(ctx, consumer.ID)
	require.NoError(t, err)
	assert.Zero(t, visible)
}

func TestRosterService_Recompute_WithoutGeocodedLocation(t *testing.T) {
	service, rosterRepo, consumerRepo, _ := createTestRosterService(t)
	ctx := context.Background()

	consumer := &entity.Consumer{
		ID:          uuid.New(),
		RadiusMiles: 5.0,
		Active:      true,
		DeliveryLocation: &entity.DeliveryLocation{
			Address: "somewhere unresolved",
		},
	}
	flagless := &entity.RosterEntry{
		ID:           uuid.New(),
		ConsumerID:   consumer.ID,
		RetailerID:   uuid.New(),
		InsideRadius: true,
	}

	consumerRepo.EXPECT().FindConsumerByID(ctx, consumer.ID).Return(consumer, nil)
	rosterRepo.EXPECT().FindEntriesByConsumer(ctx, consumer.ID).Return([]*entity.RosterEntry{flagless}, nil)
	rosterRepo.EXPECT().DeleteEntry(ctx, consumer.ID, flagless.RetailerID).Return(nil).Once()

	visible, err := service.Recompute(ctx, consumer.ID)
	require.NoError(t, err)
	assert.Zero(t, visible)
}

func TestRosterService_AddRetailer_ClearsStickyRemoval(t *testing.T) {
	service, rosterRepo, _, retailerRepo := createTestRosterService(t)
	ctx := context.Background()

	consumerID := uuid.New()
	retailer := testRetailerAt(40.02, -75.0)
	entry := &entity.RosterEntry{
		ID:              uuid.New(),
		ConsumerID:      consumerID,
		RetailerID:      retailer.ID,
		ManuallyRemoved: true,
	}

	retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	rosterRepo.EXPECT().FindEntry(ctx, consumerID, retailer.ID).Return(entry, nil)
	rosterRepo.EXPECT().UpdateEntry(ctx, entry).Return(nil)

	require.NoError(t, service.AddRetailer(ctx, consumerID, retailer.ID))
	assert.True(t, entry.ManuallyAdded)
	assert.False(t, entry.ManuallyRemoved)
	assert.True(t, entry.Visible())
}

func TestRosterService_AddRetailer_UnknownRetailer(t *testing.T) {
	service, _, _, retailerRepo := createTestRosterService(t)
	ctx := context.Background()

	retailerID := uuid.New()
	retailerRepo.EXPECT().FindRetailerByID(ctx, retailerID).Return(nil, repository.ErrRetailerNotFound)

	err := service.AddRetailer(ctx, uuid.New(), retailerID)
	assert.ErrorIs(t, err, domainerrors.ErrRetailerNotFound)
}

func TestRosterService_AddRetailer_RejectsRetailerWithoutCoordinates(t *testing.T) {
	service, _, _, retailerRepo := createTestRosterService(t)
	ctx := context.Background()

	retailer := testRetailerAt(40.02, -75.0)
	retailer.Coordinates = nil
	retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)

	err := service.AddRetailer(ctx, uuid.New(), retailer.ID)
	assert.ErrorIs(t, err, domainerrors.ErrRetailerNotFound)
}

func TestRosterService_AddRetailer_RejectsInactiveRetailer(t *testing.T) {
	service, _, _, retailerRepo := createTestRosterService(t)
	ctx := context.Background()

	retailer := testRetailerAt(40.02, -75.0)
	retailer.Active = false
	retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)

	err := service.AddRetailer(ctx, uuid.New(), retailer.ID)
	assert.ErrorIs(t, err, domainerrors.ErrRetailerNotFound)
}

func TestRosterService_RemoveRetailer_DeletesManualOnlyEntry(t *testing.T) {
	service, rosterRepo, _, _ := createTestRosterService(t)
	ctx := context.Background()

	consumerID := uuid.New()
	retailerID := uuid.New()
	entry := &entity.RosterEntry{
		ID:            uuid.New(),
		ConsumerID:    consumerID,
		RetailerID:    retailerID,
		InsideRadius:  false,
		ManuallyAdded: true,
	}

	rosterRepo.EXPECT().FindEntry(ctx, consumerID, retailerID).Return(entry, nil)
	// Out of range and only pinned: nothing left to suppress, drop the row.
	rosterRepo.EXPECT().DeleteEntry(ctx, consumerID, retailerID).Return(nil).Once()

	require.NoError(t, service.RemoveRetailer(ctx, consumerID, retailerID))
}

func TestRosterService_RemoveRetailer_MarksSticky(t *testing.T) {
	service, rosterRepo, _, _ := createTestRosterService(t)
	ctx := context.Background()

	consumerID := uuid.New()
	retailerID := uuid.New()
	entry := &entity.RosterEntry{
		ID:           uuid.New(),
		ConsumerID:   consumerID,
		RetailerID:   retailerID,
		InsideRadius: true,
	}

	rosterRepo.EXPECT().FindEntry(ctx, consumerID, retailerID).Return(entry, nil)
	rosterRepo.EXPECT().UpdateEntry(ctx, entry).Return(nil)

	require.NoError(t, service.RemoveRetailer(ctx, consumerID, retailerID))
	assert.True(t, entry.ManuallyRemoved)
	assert.False(t, entry.Visible(), "a removed in-range retailer must stay hidden")
}

func TestRosterService_ListRoster_SortsByDistanceAndHidesRemoved(t *testing.T) {
	service, rosterRepo, _, retailerRepo := createTestRosterService(t)
	ctx := context.Background()

	consumerID := uuid.New()
	nearer := testRetailerAt(40.01, -75.0)
	farther := testRetailerAt(40.05, -75.0)
	hidden := testRetailerAt(40.02, -75.0)

	entries := []*entity.RosterEntry{
		{ConsumerID: consumerID, RetailerID: farther.ID, DistanceMiles: 3.47, InsideRadius: true},
		{ConsumerID: consumerID, RetailerID: nearer.ID, DistanceMiles: 0.69, InsideRadius: true},
		{ConsumerID: consumerID, RetailerID: hidden.ID, DistanceMiles: 1.38, InsideRadius: true, ManuallyRemoved: true},
	}

	rosterRepo.EXPECT().FindEntriesByConsumer(ctx, consumerID).Return(entries, nil)
	retailerRepo.EXPECT().FindRetailerByID(ctx, farther.ID).Return(farther, nil)
	retailerRepo.EXPECT().FindRetailerByID(ctx, nearer.ID).Return(nearer, nil)

	roster, err := service.ListRoster(ctx, consumerID)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, nearer.ID, roster[0].Retailer.ID)
	assert.Equal(t, farther.ID, roster[1].Retailer.ID)
	assert.Equal(t, 0.7, roster[0].DistanceMiles, "display distance is rounded to one decimal")
}
