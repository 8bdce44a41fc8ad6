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
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/service"
	mockRepo "github.com/alfredtoussaint-cpu/dealshaq/internal/mocks/repository"
	mockSvc "github.com/alfredtoussaint-cpu/dealshaq/internal/mocks/service"
	mockUC "github.com/alfredtoussaint-cpu/dealshaq/internal/mocks/usecase"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"
)

func createTestConsumerService(t *testing.T) (
	usecase.ConsumerUsecase,
	*mockRepo.MockConsumerRepository,
	*mockSvc.MockGeocodingService,
	*mockUC.MockRosterUsecase,
	*mockRepo.MockRosterRepository,
) {
	consumerRepo := mockRepo.NewMockConsumerRepository(t)
	geocoder := mockSvc.NewMockGeocodingService(t)
	roster := mockUC.NewMockRosterUsecase(t)
	rosterRepo := mockRepo.NewMockRosterRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// Execute runs the callback against a factory handing out the same
	// repository mocks the service already holds.
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewConsumerRepository().Return(consumerRepo).Maybe()
	factory.EXPECT().NewRosterRepository().Return(rosterRepo).Maybe()
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Maybe()

	svc := NewConsumerService(ConsumerServiceParams{
		ConsumerRepo: consumerRepo,
		Geocoder:     geocoder,
		Roster:       roster,
		TxManager:    txManager,
		Logger:       logger,
	})

	return svc, consumerRepo, geocoder, roster, rosterRepo
}

func TestConsumerService_SetDeliveryLocation_GeocodesAndRecomputes(t *testing.T) {
	svc, consumerRepo, geocoder, roster, _ := createTestConsumerService(t)
	ctx := context.Background()
	consumerID := uuid.New()
	address := "123 Main St, Philadelphia, PA"
	coords := &entity.Coordinates{Latitude: 40.0, Longitude: -75.0}

	geocoder.EXPECT().Geocode(ctx, address).Return(coords, nil)
	consumerRepo.EXPECT().UpdateDeliveryLocation(ctx, consumerID, &entity.DeliveryLocation{
		Address:     address,
		Coordinates: coords,
	}).Return(nil)
	roster.EXPECT().Recompute(ctx, consumerID).Return(2, nil)
	consumerRepo.EXPECT().FindConsumerByID(ctx, consumerID).Return(&entity.Consumer{
		ID:               consumerID,
		DeliveryLocation: &entity.DeliveryLocation{Address: address, Coordinates: coords},
	}, nil)

	consumer, err := svc.SetDeliveryLocation(ctx, &usecase.SetDeliveryLocationInput{
		ConsumerID: consumerID,
		Address:    address,
	})
	require.NoError(t, err)
	assert.True(t, consumer.DeliveryLocation.Geocoded())
}

func TestConsumerService_SetDeliveryLocation_UnresolvableAddress(t *testing.T) {
	svc, _, geocoder, _, _ := createTestConsumerService(t)
	ctx := context.Background()

	geocoder.EXPECT().Geocode(ctx, "nowhere").Return(nil, service.ErrAddressNotFound)

	_, err := svc.SetDeliveryLocation(ctx, &usecase.SetDeliveryLocationInput{
		ConsumerID: uuid.New(),
		Address:    "nowhere",
	})
	assert.ErrorIs(t, err, domainerrors.ErrGeocodeFailed)
}

func TestConsumerService_SetRadius_Bounds(t *testing.T) {
	svc, _, _, _, _ := createTestConsumerService(t)
	ctx := context.Background()

	for _, radius := range []float64{0.0, 0.05, 10.0, -1.0} {
		_, err := svc.SetRadius(ctx, &usecase.SetRadiusInput{
			ConsumerID:  uuid.New(),
			RadiusMiles: radius,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius, "radius %v must be rejected", radius)
	}
}

func TestConsumerService_SetRadius_TriggersRecompute(t *testing.T) {
	svc, consumerRepo, _, roster, _ := createTestConsumerService(t)
	ctx := context.Background()
	consumerID := uuid.New()

	consumerRepo.EXPECT().UpdateRadius(ctx, consumerID, 2.5).Return(nil)
	roster.EXPECT().Recompute(ctx, consumerID).Return(2, nil)
	consumerRepo.EXPECT().FindConsumerByID(ctx, consumerID).Return(&entity.Consumer{
		ID:          consumerID,
		RadiusMiles: 2.5,
	}, nil)

	consumer, err := svc.SetRadius(ctx, &usecase.SetRadiusInput{ConsumerID: consumerID, RadiusMiles: 2.5})
	require.NoError(t, err)
	assert.Equal(t, 2.5, consumer.RadiusMiles)
}

func TestConsumerService_SetAutoFavoriteThreshold(t *testing.T) {
	svc, consumerRepo, _, _, _ := createTestConsumerService(t)
	ctx := context.Background()
	consumerID := uuid.New()

	_, err := svc.SetAutoFavoriteThreshold(ctx, &usecase.SetAutoFavoriteThresholdInput{
		ConsumerID: consumerID,
		Days:       4,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidThreshold)

	consumerRepo.EXPECT().UpdateAutoFavoriteThreshold(ctx, consumerID, 6).Return(nil)
	consumerRepo.EXPECT().FindConsumerByID(ctx, consumerID).Return(&entity.Consumer{
		ID:                        consumerID,
		AutoFavoriteThresholdDays: 6,
	}, nil)

	consumer, err := svc.SetAutoFavoriteThreshold(ctx, &usecase.SetAutoFavoriteThresholdInput{
		ConsumerID: consumerID,
		Days:       6,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, consumer.AutoFavoriteThresholdDays)
}

func TestConsumerService_Deactivate_PrunesRoster(t *testing.T) {
	svc, consumerRepo, _, _, rosterRepo := createTestConsumerService(t)
	ctx := context.Background()
	consumerID := uuid.New()

	consumerRepo.EXPECT().DeactivateConsumer(ctx, consumerID).Return(nil).Once()
	rosterRepo.EXPECT().DeleteEntriesByConsumer(ctx, consumerID).Return(nil).Once()

	require.NoError(t, svc.Deactivate(ctx, consumerID))
}

func TestConsumerService_Deactivate_UnknownConsumer(t *testing.T) {
	svc, consumerRepo, _, _, rosterRepo := createTestConsumerService(t)
	ctx := context.Background()
	consumerID := uuid.New()

	consumerRepo.EXPECT().DeactivateConsumer(ctx, consumerID).Return(repository.ErrConsumerNotFound).Once()

	err := svc.Deactivate(ctx, consumerID)
	assert.ErrorIs(t, err, domainerrors.ErrConsumerNotFound)
	rosterRepo.AssertNotCalled(t, "DeleteEntriesByConsumer", mock.Anything, mock.Anything)
}
