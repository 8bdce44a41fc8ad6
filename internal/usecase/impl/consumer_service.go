package impl

import (
	"context"
	"log/slog"

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

// consumerService implements the ConsumerUsecase interface.
type consumerService struct {
	consumerRepo repository.ConsumerRepository
	geocoder     service.GeocodingService
	roster       usecase.RosterUsecase
	txManager    repository.TransactionManager
	logger       *slog.Logger
}

// ConsumerServiceParams holds dependencies for consumerService, injected by Fx.
type ConsumerServiceParams struct {
	fx.In

	ConsumerRepo repository.ConsumerRepository
	Geocoder     service.GeocodingService
	Roster       usecase.RosterUsecase
	TxManager    repository.TransactionManager
	Logger       *slog.Logger
}

// NewConsumerService is the constructor for consumerService.
func NewConsumerService(params ConsumerServiceParams) usecase.ConsumerUsecase {
	return &consumerService{
		consumerRepo: params.ConsumerRepo,
		geocoder:     params.Geocoder,
		roster:       params.Roster,
		txManager:    params.TxManager,
		logger:       params.Logger,
	}
}

func (srv *consumerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *consumerService) GetProfile(ctx context.Context, consumerID uuid.UUID) (*entity.Consumer, error) {
	consumer, err := srv.consumerRepo.FindConsumerByID(ctx, consumerID)
	if err != nil {
		if errors.Is(err, repository.ErrConsumerNotFound) {
			return nil, domainerrors.ErrConsumerNotFound
		}

		return nil, errors.Wrap(err, "failed to load consumer profile")
	}

	return consumer, nil
}

// SetDeliveryLocation geocodes the new address, saves it and rebuilds
// the roster around the new coordinates.
func (srv *consumerService) SetDeliveryLocation(ctx context.Context, input *usecase.SetDeliveryLocationInput) (*entity.Consumer, error) {
	coords, err := srv.geocoder.Geocode(ctx, input.Address)
	if err != nil {
		if errors.Is(err, service.ErrAddressNotFound) {
			return nil, domainerrors.ErrGeocodeFailed.WithDetails(input.Address)
		}

		srv.log(ctx).Error("Geocoding failed", slog.String("address", input.Address), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to geocode delivery address")
	}

	location := &entity.DeliveryLocation{Address: input.Address, Coordinates: coords}
	if err := srv.consumerRepo.UpdateDeliveryLocation(ctx, input.ConsumerID, location); err != nil {
		if errors.Is(err, repository.ErrConsumerNotFound) {
			return nil, domainerrors.ErrConsumerNotFound
		}

		return nil, errors.Wrap(err, "failed to update delivery location")
	}

	visible, err := srv.roster.Recompute(ctx, input.ConsumerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to recompute roster after location change")
	}
	srv.log(ctx).Info("Delivery location updated",
		slog.String("consumer_id", input.ConsumerID.String()),
		slog.Int("visible_retailers", visible))

	return srv.GetProfile(ctx, input.ConsumerID)
}

// SetRadius validates and saves the radius, then rebuilds the roster.
func (srv *consumerService) SetRadius(ctx context.Context, input *usecase.SetRadiusInput) (*entity.Consumer, error) {
	if !entity.ValidRadius(input.RadiusMiles) {
		return nil, domainerrors.ErrInvalidRadius
	}

	if err := srv.consumerRepo.UpdateRadius(ctx, input.ConsumerID, input.RadiusMiles); err != nil {
		if errors.Is(err, repository.ErrConsumerNotFound) {
			return nil, domainerrors.ErrConsumerNotFound
		}

		return nil, errors.Wrap(err, "failed to update radius")
	}

	visible, err := srv.roster.Recompute(ctx, input.ConsumerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to recompute roster after radius change")
	}
	srv.log(ctx).Info("Radius updated",
		slog.String("consumer_id", input.ConsumerID.String()),
		slog.Int("visible_retailers", visible))

	return srv.GetProfile(ctx, input.ConsumerID)
}

func (srv *consumerService) SetAutoFavoriteThreshold(ctx context.Context, input *usecase.SetAutoFavoriteThresholdInput) (*entity.Consumer, error) {
	if !entity.ValidAutoFavoriteThreshold(input.Days) {
		return nil, domainerrors.ErrInvalidThreshold
	}

	if err := srv.consumerRepo.UpdateAutoFavoriteThreshold(ctx, input.ConsumerID, input.Days); err != nil {
		if errors.Is(err, repository.ErrConsumerNotFound) {
			return nil, domainerrors.ErrConsumerNotFound
		}

		return nil, errors.Wrap(err, "failed to update auto-favorite threshold")
	}

	return srv.GetProfile(ctx, input.ConsumerID)
}

// Deactivate retires the account and clears its roster in one
// transaction, so matching stops fanning out to it immediately.
func (srv *consumerService) Deactivate(ctx context.Context, consumerID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.NewConsumerRepository().DeactivateConsumer(ctx, consumerID); err != nil {
			if errors.Is(err, repository.ErrConsumerNotFound) {
				return domainerrors.ErrConsumerNotFound
			}

			return errors.Wrap(err, "failed to deactivate consumer")
		}

		if err := repos.NewRosterRepository().DeleteEntriesByConsumer(ctx, consumerID); err != nil {
			return errors.Wrap(err, "failed to clear roster on deactivation")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Consumer deactivated", slog.String("consumer_id", consumerID.String()))

	return nil
}
