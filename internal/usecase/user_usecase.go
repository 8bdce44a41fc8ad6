// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterConsumerInput defines the data required to register a consumer.
type RegisterConsumerInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterRetailerInput defines the data required to register a retailer.
// New retailers always start in the pending approval state.
type RegisterRetailerInput struct {
	Name      string
	Email     string
	Password  string
	StoreName string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterConsumerOutput returns the newly created consumer.
type RegisterConsumerOutput struct {
	Consumer *entity.Consumer
}

// RegisterRetailerOutput returns the newly created retailer.
type RegisterRetailerOutput struct {
	Retailer *entity.Retailer
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Role         entity.Role
}

// UserUsecase defines the interface for account registration and login.
// This is the contract that the delivery layer depends on.
type UserUsecase interface {
	RegisterConsumer(ctx context.Context, input *RegisterConsumerInput) (*RegisterConsumerOutput, error)
	RegisterRetailer(ctx context.Context, input *RegisterRetailerInput) (*RegisterRetailerOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
