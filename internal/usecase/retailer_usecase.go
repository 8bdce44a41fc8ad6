package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
)

// UpdateRetailerProfileInput carries a retailer's editable profile
// fields. A changed street address is re-geocoded before saving.
type UpdateRetailerProfileInput struct {
	RetailerID   uuid.UUID
	StoreName    string
	StoreAddress string
	StoreHours   string
	LogoURL      string
}

// ReadinessOutput is the go-live checklist with its verdict.
type ReadinessOutput struct {
	Checklist entity.ReadinessChecklist
	Ready     bool
}

// UpdateStoreStatusInput carries an admin's store status decision.
type UpdateStoreStatusInput struct {
	RetailerID uuid.UUID
	Status     entity.StoreStatus
}

// RetailerUsecase manages retailer profiles and the store lifecycle.
type RetailerUsecase interface {
	GetProfile(ctx context.Context, retailerID uuid.UUID) (*entity.Retailer, error)

	// UpdateProfile saves the profile and geocodes the store address.
	UpdateProfile(ctx context.Context, input *UpdateRetailerProfileInput) (*entity.Retailer, error)

	// Readiness evaluates the go-live checklist: store hours, a logo
	// and enough stocked deals.
	Readiness(ctx context.Context, retailerID uuid.UUID) (*ReadinessOutput, error)

	// RequestGoLive moves a sandbox store to pending live once the
	// checklist passes.
	RequestGoLive(ctx context.Context, retailerID uuid.UUID) (*entity.Retailer, error)

	// UpdateStoreStatus applies an admin transition. Illegal moves are
	// rejected.
	UpdateStoreStatus(ctx context.Context, input *UpdateStoreStatusInput) (*entity.Retailer, error)
}
