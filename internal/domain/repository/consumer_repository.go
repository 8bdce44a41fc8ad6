// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/errors"
)

// Domain-specific errors for consumer persistence.
var (
	// ErrConsumerNotFound is returned when a consumer is not found.
	ErrConsumerNotFound = errors.New("consumer not found")
	// ErrDuplicateConsumer is returned when the email is already registered.
	ErrDuplicateConsumer = errors.New("consumer already exists")
)

// ConsumerRepository defines the interface for consumer-related database operations.
type ConsumerRepository interface {
	// CreateConsumer persists a new consumer.
	CreateConsumer(ctx context.Context, consumer *entity.Consumer) error

	// FindConsumerByID retrieves a consumer by its unique ID.
	FindConsumerByID(ctx context.Context, id uuid.UUID) (*entity.Consumer, error)

	// FindConsumerByEmail retrieves a consumer by login email.
	FindConsumerByEmail(ctx context.Context, email string) (*entity.Consumer, error)

	// UpdateDeliveryLocation replaces the delivery location, including
	// any geocoded coordinates.
	UpdateDeliveryLocation(ctx context.Context, id uuid.UUID, location *entity.DeliveryLocation) error

	// UpdateRadius updates the consumer's area-of-interest radius.
	UpdateRadius(ctx context.Context, id uuid.UUID, radiusMiles float64) error

	// UpdateAutoFavoriteThreshold updates the auto-favorite day threshold.
	UpdateAutoFavoriteThreshold(ctx context.Context, id uuid.UUID, days int) error

	// DeactivateConsumer marks the consumer inactive. Consumers are never
	// hard-deleted.
	DeactivateConsumer(ctx context.Context, id uuid.UUID) error
}
