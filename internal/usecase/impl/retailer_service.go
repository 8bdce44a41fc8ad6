package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	deliverycontext "github.com/alfredtoussaint-cpu/dealshaq/internal/delivery/context"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	domainerrors "github.com/alfredtoussaint-cpu/dealshaq/internal/domain/errors"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/repository"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/service"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/errors"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/usecase"
)

// retailerService implements the RetailerUsecase interface.
type retailerService struct {
	retailerRepo repository.RetailerRepository
	dealRepo     repository.DealRepository
	geocoder     service.GeocodingService
	txManager    repository.TransactionManager
	logger       *slog.Logger
}

// RetailerServiceParams holds dependencies for retailerService, injected by Fx.
type RetailerServiceParams struct {
	fx.In

	RetailerRepo repository.RetailerRepository
	DealRepo     repository.DealRepository
	Geocoder     service.GeocodingService
	TxManager    repository.TransactionManager
	Logger       *slog.Logger
}

// NewRetailerService is the constructor for retailerService.
func NewRetailerService(params RetailerServiceParams) usecase.RetailerUsecase {
	return &retailerService{
		retailerRepo: params.RetailerRepo,
		dealRepo:     params.DealRepo,
		geocoder:     params.Geocoder,
		txManager:    params.TxManager,
		logger:       params.Logger,
	}
}

func (srv *retailerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *retailerService) GetProfile(ctx context.Context, retailerID uuid.UUID) (*entity.Retailer, error) {
	retailer, err := srv.retailerRepo.FindRetailerByID(ctx, retailerID)
	if err != nil {
		if errors.Is(err, repository.ErrRetailerNotFound) {
			return nil, domainerrors.ErrRetailerNotFound
		}

		return nil, errors.Wrap(err, "failed to load retailer profile")
	}

	return retailer, nil
}

// UpdateProfile saves the profile fields and re-geocodes the store
// address when it changed. A store without resolved coordinates never
// appears in consumer rosters.
func (srv *retailerService) UpdateProfile(ctx context.Context, input *usecase.UpdateRetailerProfileInput) (*entity.Retailer, error) {
	retailer, err := srv.GetProfile(ctx, input.RetailerID)
	if err != nil {
		return nil, err
	}

	if input.StoreAddress != "" && input.StoreAddress != retailer.Address {
		coords, err := srv.geocoder.Geocode(ctx, input.StoreAddress)
		if err != nil {
			if errors.Is(err, service.ErrAddressNotFound) {
				return nil, domainerrors.ErrGeocodeFailed.WithDetails(input.StoreAddress)
			}

			return nil, errors.Wrap(err, "failed to geocode store address")
		}
		retailer.Address = input.StoreAddress
		retailer.Coordinates = coords
	}

	if input.StoreName != "" {
		retailer.StoreName = input.StoreName
	}
	if input.StoreHours != "" {
		retailer.StoreHours = input.StoreHours
	}
	if input.LogoURL != "" {
		retailer.LogoURL = input.LogoURL
	}
	retailer.UpdatedAt = time.Now()

	if err := srv.retailerRepo.UpdateRetailerProfile(ctx, retailer); err != nil {
		return nil, errors.Wrap(err, "failed to update retailer profile")
	}

	return retailer, nil
}

// Readiness evaluates the go-live checklist.
func (srv *retailerService) Readiness(ctx context.Context, retailerID uuid.UUID) (*usecase.ReadinessOutput, error) {
	retailer, err := srv.GetProfile(ctx, retailerID)
	if err != nil {
		return nil, err
	}

	readyDeals, err := srv.dealRepo.CountReadyDeals(ctx, retailerID, entity.MinReadyDealQuantity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count ready deals")
	}

	checklist := retailer.Readiness(readyDeals)

	return &usecase.ReadinessOutput{
		Checklist: checklist,
		Ready:     checklist.Satisfied(),
	}, nil
}

// RequestGoLive moves a sandbox store to pending live once the checklist
// passes. The final move to live stays an admin decision. Checklist
// evaluation and the status flip run in one transaction, so a deal
// withdrawn mid-request cannot slip past the readiness gate.
func (srv *retailerService) RequestGoLive(ctx context.Context, retailerID uuid.UUID) (*entity.Retailer, error) {
	var retailer *entity.Retailer

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		retailerRepo := repos.NewRetailerRepository()

		current, err := retailerRepo.FindRetailerByID(ctx, retailerID)
		if err != nil {
			if errors.Is(err, repository.ErrRetailerNotFound) {
				return domainerrors.ErrRetailerNotFound
			}

			return errors.Wrap(err, "failed to load retailer for go-live")
		}

		if !current.StoreStatus.CanTransitionTo(entity.StorePendingLive) {
			return domainerrors.ErrInvalidStatusTransition
		}

		readyDeals, err := repos.NewDealRepository().CountReadyDeals(ctx, retailerID, entity.MinReadyDealQuantity)
		if err != nil {
			return errors.Wrap(err, "failed to count ready deals")
		}
		if !current.Readiness(readyDeals).Satisfied() {
			return domainerrors.ErrValidationFailed.WithDetails("go-live checklist is not satisfied")
		}

		if err := retailerRepo.UpdateStoreStatus(ctx, retailerID, entity.StorePendingLive); err != nil {
			return errors.Wrap(err, "failed to update store status")
		}

		current.StoreStatus = entity.StorePendingLive
		current.UpdatedAt = time.Now()
		retailer = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Store requested go-live", slog.String("retailer_id", retailerID.String()))

	return retailer, nil
}

// UpdateStoreStatus applies an admin transition through the store
// lifecycle state machine.
func (srv *retailerService) UpdateStoreStatus(ctx context.Context, input *usecase.UpdateStoreStatusInput) (*entity.Retailer, error) {
	retailer, err := srv.GetProfile(ctx, input.RetailerID)
	if err != nil {
		return nil, err
	}

	if !retailer.StoreStatus.CanTransitionTo(input.Status) {
		return nil, domainerrors.ErrInvalidStatusTransition
	}

	return srv.transition(ctx, retailer, input.Status)
}

func (srv *retailerService) transition(ctx context.Context, retailer *entity.Retailer, next entity.StoreStatus) (*entity.Retailer, error) {
	if err := srv.retailerRepo.UpdateStoreStatus(ctx, retailer.ID, next); err != nil {
		return nil, errors.Wrap(err, "failed to update store status")
	}

	srv.log(ctx).Info("Store status changed",
		slog.String("retailer_id", retailer.ID.String()),
		slog.String("from", string(retailer.StoreStatus)),
		slog.String("to", string(next)))

	retailer.StoreStatus = next
	retailer.UpdatedAt = time.Now()

	return retailer, nil
}
