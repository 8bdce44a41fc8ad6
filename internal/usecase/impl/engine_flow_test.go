package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/alfredtoussaint-cpu/dealshaq/config"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/hub"
	mockRepo "github.com/alfredtoussaint-cpu/dealshaq/internal/mocks/repository"
	mockUC "github.com/alfredtoussaint-cpu/dealshaq/internal/mocks/usecase"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"
)

// rosterEntryStore backs the roster repository mock with real state, so
// entries written by a recompute are the same entries the matching run
// reads back.
type rosterEntryStore struct {
	mu      sync.Mutex
	entries []*entity.RosterEntry
}

func (s *rosterEntryStore) add(entry *entity.RosterEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

func (s *rosterEntryStore) byConsumer(consumerID uuid.UUID) []*entity.RosterEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result []*entity.RosterEntry
	for _, entry := range s.entries {
		if entry.ConsumerID == consumerID {
			result = append(result, entry)
		}
	}

	return result
}

func (s *rosterEntryStore) visibleConsumers(retailerID uuid.UUID) []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []uuid.UUID
	for _, entry := range s.entries {
		if entry.RetailerID == retailerID && entry.Visible() {
			ids = append(ids, entry.ConsumerID)
		}
	}

	return ids
}

// The full notification path: a consumer sets up shop at a location, the
// roster recompute picks up a nearby live store, and a matching deal from
// that store lands as exactly one stored notification plus a live frame
// on the consumer's open socket.
func TestDealFlow_NearbyDealReachesConnectedConsumer(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	consumer := &entity.Consumer{
		ID:   uuid.New(),
		Name: "Dairy Devotee",
		DeliveryLocation: &entity.DeliveryLocation{
			Address:     "123 Main St, Philadelphia, PA",
			Coordinates: &entity.Coordinates{Latitude: 40.0, Longitude: -75.0},
		},
		RadiusMiles: 5.0,
		Active:      true,
	}
	// Roughly three miles due north of the consumer.
	retailer := &entity.Retailer{
		ID:          uuid.New(),
		StoreName:   "Corner Market",
		Coordinates: &entity.Coordinates{Latitude: 40.0435, Longitude: -75.0},
		StoreStatus: entity.StoreLive,
		Active:      true,
	}

	store := &rosterEntryStore{}

	consumerRepo := mockRepo.NewMockConsumerRepository(t)
	consumerRepo.EXPECT().FindConsumerByID(ctx, consumer.ID).Return(consumer, nil)

	retailerRepo := mockRepo.NewMockRetailerRepository(t)
	retailerRepo.EXPECT().FindLocatableRetailers(ctx).Return([]*entity.Retailer{retailer}, nil)
	retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)

	rosterRepo := mockRepo.NewMockRosterRepository(t)
	rosterRepo.EXPECT().FindEntriesByConsumer(ctx, consumer.ID).RunAndReturn(
		func(_ context.Context, consumerID uuid.UUID) ([]*entity.RosterEntry, error) {
			return store.byConsumer(consumerID), nil
		})
	rosterRepo.EXPECT().CreateEntry(ctx, mock.Anything).RunAndReturn(
		func(_ context.Context, entry *entity.RosterEntry) error {
			store.add(entry)

			return nil
		})
	rosterRepo.EXPECT().FindVisibleConsumerIDsByRetailer(ctx, retailer.ID).RunAndReturn(
		func(_ context.Context, retailerID uuid.UUID) ([]uuid.UUID, error) {
			return store.visibleConsumers(retailerID), nil
		})

	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	favoriteRepo.EXPECT().FindFavoritesByConsumers(mock.Anything, []uuid.UUID{consumer.ID}).Return(
		map[uuid.UUID][]*entity.FavoriteItem{
			consumer.ID: {favoriteFromRaw(consumer.ID, "Milk", entity.FavoriteSourceManual)},
		}, nil)

	dealRepo := mockRepo.NewMockDealRepository(t)
	dealRepo.EXPECT().CreateDeal(ctx, mock.Anything).Return(nil)

	var (
		notifMu sync.Mutex
		stored  []*entity.Notification
	)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	notificationRepo.EXPECT().CreateNotification(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, notification *entity.Notification) error {
			notifMu.Lock()
			defer notifMu.Unlock()
			stored = append(stored, notification)

			return nil
		})

	deliveryHub := hub.NewHub(&config.HubConfig{
		PingInterval:     time.Second,
		HeartbeatTimeout: time.Minute,
		SweepInterval:    time.Second,
		SendBufferSize:   8,
	}, logger)
	slot := deliveryHub.Register(consumer.ID)

	rosterService := NewRosterService(RosterServiceParams{
		RosterRepo:   rosterRepo,
		ConsumerRepo: consumerRepo,
		RetailerRepo: retailerRepo,
		Logger:       logger,
	})
	dealService := NewDealService(DealServiceParams{
		DealRepo:         dealRepo,
		RetailerRepo:     retailerRepo,
		RosterRepo:       rosterRepo,
		FavoriteRepo:     favoriteRepo,
		NotificationRepo: notificationRepo,
		Hub:              deliveryHub,
		Favorites:        mockUC.NewMockFavoriteUsecase(t),
		Config:           &config.Config{Match: &config.MatchConfig{Workers: 4}},
		Logger:           logger,
	})

	visible, err := rosterService.Recompute(ctx, consumer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, visible)

	out, err := dealService.PostDeal(ctx, &usecase.PostDealInput{
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

	notifMu.Lock()
	require.Len(t, stored, 1)
	notification := stored[0]
	notifMu.Unlock()
	assert.Equal(t, consumer.ID, notification.ConsumerID)
	assert.Equal(t, out.Deal.ID, notification.DealID)
	assert.Equal(t, "New deal on Milk - 50% off at Corner Market!", notification.Message)

	select {
	case frame := <-slot.Send:
		var envelope struct {
			Type string              `json:"type"`
			Data entity.Notification `json:"data"`
		}
		require.NoError(t, json.Unmarshal(frame, &envelope))
		assert.Equal(t, "new_deal_notification", envelope.Type)
		assert.Equal(t, notification.Message, envelope.Data.Message)
	case <-time.After(time.Second):
		t.Fatal("no frame delivered to the connected consumer")
	}
}
