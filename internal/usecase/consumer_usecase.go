package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
)

// SetDeliveryLocationInput carries a consumer's new delivery address.
type SetDeliveryLocationInput struct {
	ConsumerID uuid.UUID
	Address    string
}

// SetRadiusInput carries a consumer's new area-of-interest radius.
type SetRadiusInput struct {
	ConsumerID  uuid.UUID
	RadiusMiles float64
}

// SetAutoFavoriteThresholdInput carries a consumer's auto-favorite
// day threshold. Zero disables auto-favoriting.
type SetAutoFavoriteThresholdInput struct {
	ConsumerID uuid.UUID
	Days       int
}

// ConsumerUsecase defines consumer profile and preference operations.
// Location and radius changes trigger a roster recomputation before
// they return.
type ConsumerUsecase interface {
	GetProfile(ctx context.Context, consumerID uuid.UUID) (*entity.Consumer, error)
	SetDeliveryLocation(ctx context.Context, input *SetDeliveryLocationInput) (*entity.Consumer, error)
	SetRadius(ctx context.Context, input *SetRadiusInput) (*entity.Consumer, error)
	SetAutoFavoriteThreshold(ctx context.Context, input *SetAutoFavoriteThresholdInput) (*entity.Consumer, error)
	Deactivate(ctx context.Context, consumerID uuid.UUID) error
}
