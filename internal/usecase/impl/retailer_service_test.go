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
	mockSvc "github.com/alfredtoussaint-cpu/dealshaq/internal/mocks/service"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"
)

func createTestRetailerService(t *testing.T) (
	usecase.RetailerUsecase,
	*mockRepo.MockRetailerRepository,
	*mockRepo.MockDealRepository,
	*mockSvc.MockGeocodingService,
) {
	retailerRepo := mockRepo.NewMockRetailerRepository(t)
	dealRepo := mockRepo.NewMockDealRepository(t)
	geocoder := mockSvc.NewMockGeocodingService(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	// Execute runs the callback against a factory handing out the same
	// repository mocks the service already holds.
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewRetailerRepository().Return(retailerRepo).Maybe()
	factory.EXPECT().NewDealRepository().Return(dealRepo).Maybe()
	txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).Maybe()

	svc := NewRetailerService(RetailerServiceParams{
		RetailerRepo: retailerRepo,
		DealRepo:     dealRepo,
		Geocoder:     geocoder,
		TxManager:    txManager,
		Logger:       logger,
	})

	return svc, retailerRepo, dealRepo, geocoder
}

func sandboxRetailer() *entity.Retailer {
	return &entity.Retailer{
		ID:          uuid.New(),
		StoreName:   "Corner Market",
		Address:     "200 Market St, Philadelphia, PA",
		Coordinates: &entity.Coordinates{Latitude: 40.0, Longitude: -75.0},
		StoreHours:  "8-20",
		LogoURL:     "https://cdn.example.com/logo.png",
		StoreStatus: entity.StoreSandbox,
		Active:      true,
	}
}

func TestRetailerService_UpdateProfile_RegeocodesChangedAddress(t *testing.T) {
	svc, retailerRepo, _, geocoder := createTestRetailerService(t)
	ctx := context.Background()

	retailer := sandboxRetailer()
	newAddress := "500 Broad St, Philadelphia, PA"
	newCoords := &entity.Coordinates{Latitude: 39.95, Longitude: -75.16}

	retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	geocoder.EXPECT().Geocode(ctx, newAddress).Return(newCoords, nil)
	retailerRepo.EXPECT().UpdateRetailerProfile(ctx, retailer).Return(nil)

	updated, err := svc.UpdateProfile(ctx, &usecase.UpdateRetailerProfileInput{
		RetailerID:   retailer.ID,
		StoreAddress: newAddress,
	})
	require.NoError(t, err)
	assert.Equal(t, newAddress, updated.Address)
	assert.Equal(t, newCoords, updated.Coordinates)
}

func TestRetailerService_UpdateProfile_UnchangedAddressSkipsGeocoding(t *testing.T) {
	svc, retailerRepo, _, _ := createTestRetailerService(t)
	ctx := context.Background()

	retailer := sandboxRetailer()
	retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	retailerRepo.EXPECT().UpdateRetailerProfile(ctx, retailer).Return(nil)

	_, err := svc.UpdateProfile(ctx, &usecase.UpdateRetailerProfileInput{
		RetailerID:   retailer.ID,
		StoreAddress: retailer.Address,
		StoreHours:   "7-22",
	})
	require.NoError(t, err)
	assert.Equal(t, "7-22", retailer.StoreHours)
}

func TestRetailerService_Readiness(t *testing.T) {
	svc, retailerRepo, dealRepo, _ := createTestRetailerService(t)
	ctx := context.Background()

	retailer := sandboxRetailer()
	retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	dealRepo.EXPECT().CountReadyDeals(ctx, retailer.ID, entity.MinReadyDealQuantity).Return(2, nil)

	out, err := svc.Readiness(ctx, retailer.ID)
	require.NoError(t, err)
	assert.True(t, out.Ready)
	assert.Equal(t, 2, out.Checklist.ReadyDeals)
}

func TestRetailerService_Readiness_MissingLogo(t *testing.T) {
	svc, retailerRepo, dealRepo, _ := createTestRetailerService(t)
	ctx := context.Background()

	retailer := sandboxRetailer()
	retailer.LogoURL = ""
	retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	dealRepo.EXPECT().CountReadyDeals(ctx, retailer.ID, entity.MinReadyDealQuantity).Return(5, nil)

	out, err := svc.Readiness(ctx, retailer.ID)
	require.NoError(t, err)
	assert.False(t, out.Ready)
	assert.False(t, out.Checklist.LogoPresent)
}

func TestRetailerService_RequestGoLive_ChecklistMustPass(t *testing.T) {
	svc, retailerRepo, dealRepo, _ := createTestRetailerService(t)
	ctx := context.Background()

	retailer := sandboxRetailer()
	retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	dealRepo.EXPECT().CountReadyDeals(ctx, retailer.ID, entity.MinReadyDealQuantity).Return(1, nil)

	_, err := svc.RequestGoLive(ctx, retailer.ID)
	assert.Error(t, err, "one stocked deal is below the go-live minimum")
}

func TestRetailerService_RequestGoLive_Success(t *testing.T) {
	svc, retailerRepo, dealRepo, _ := createTestRetailerService(t)
	ctx := context.Background()

	retailer := sandboxRetailer()
	retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
	dealRepo.EXPECT().CountReadyDeals(ctx, retailer.ID, entity.MinReadyDealQuantity).Return(3, nil)
	retailerRepo.EXPECT().UpdateStoreStatus(ctx, retailer.ID, entity.StorePendingLive).Return(nil)

	updated, err := svc.RequestGoLive(ctx, retailer.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StorePendingLive, updated.StoreStatus)
}

func TestRetailerService_UpdateStoreStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    entity.StoreStatus
		to      entity.StoreStatus
		allowed bool
	}{
		{"approve new store", entity.StorePendingApproval, entity.StoreSandbox, true},
		{"go live", entity.StorePendingLive, entity.StoreLive, true},
		{"suspend live store", entity.StoreLive, entity.StoreSuspended, true},
		{"reject sandbox store", entity.StoreSandbox, entity.StoreRejected, true},
		{"skip sandbox", entity.StorePendingApproval, entity.StoreLive, false},
		{"revive rejected store", entity.StoreRejected, entity.StoreSandbox, false},
		{"suspend suspended store", entity.StoreSuspended, entity.StoreSuspended, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, retailerRepo, _, _ := createTestRetailerService(t)
			ctx := context.Background()

			retailer := sandboxRetailer()
			retailer.StoreStatus = tt.from
			retailerRepo.EXPECT().FindRetailerByID(ctx, retailer.ID).Return(retailer, nil)
			if tt.allowed {
				retailerRepo.EXPECT().UpdateStoreStatus(ctx, retailer.ID, tt.to).Return(nil)
			}

			updated, err := svc.UpdateStoreStatus(ctx, &usecase.UpdateStoreStatusInput{
				RetailerID: retailer.ID,
				Status:     tt.to,
			})
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, tt.to, updated.StoreStatus)
			} else {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
			}
		})
	}
}
