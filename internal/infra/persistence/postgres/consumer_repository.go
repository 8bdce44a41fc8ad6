// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	domainerrors "github.com/alfredtoussaint-cpu/dealshaq/internal/domain/errors"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/repository"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// consumerRepository implements the repository.ConsumerRepository interface.
type consumerRepository struct {
	db *gorm.DB
}

// NewConsumerRepository is the constructor for consumerRepository.
func NewConsumerRepository(db *gorm.DB) repository.ConsumerRepository {
	return &consumerRepository{
		db: db,
	}
}

// CreateConsumer persists a new consumer account.
func (repo *consumerRepository) CreateConsumer(ctx context.Context, consumer *entity.Consumer) error {
	consumerM := fromConsumerDomain(consumer)

	if err := repo.db.WithContext(ctx).Create(consumerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateConsumer
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required consumer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create consumer")
	}

	consumer.CreatedAt = consumerM.CreatedAt
	consumer.UpdatedAt = consumerM.UpdatedAt

	return nil
}

// FindConsumerByID retrieves a consumer by its unique ID.
func (repo *consumerRepository) FindConsumerByID(ctx context.Context, id uuid.UUID) (*entity.Consumer, error) {
	var consumerM model.ConsumerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&consumerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConsumerNotFound
		}

		return nil, errors.Wrap(err, "failed to find consumer by ID")
	}

	return toConsumerDomain(&consumerM), nil
}

// FindConsumerByEmail retrieves a consumer by login email.
func (repo *consumerRepository) FindConsumerByEmail(ctx context.Context, email string) (*entity.Consumer, error) {
	var consumerM model.ConsumerModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&consumerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConsumerNotFound
		}

		return nil, errors.Wrap(err, "failed to find consumer by email")
	}

	return toConsumerDomain(&consumerM), nil
}

// UpdateDeliveryLocation replaces the delivery address and any geocoded
// coordinates in one update.
func (repo *consumerRepository) UpdateDeliveryLocation(ctx context.Context, id uuid.UUID, location *entity.DeliveryLocation) error {
	updates := map[string]any{
		"address":    "",
		"latitude":   nil,
		"longitude":  nil,
		"updated_at": time.Now(),
	}
	if location != nil {
		updates["address"] = location.Address
		if location.Coordinates != nil {
			updates["latitude"] = location.Coordinates.Latitude
			updates["longitude"] = location.Coordinates.Longitude
		}
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ConsumerModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update delivery location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConsumerNotFound
	}

	return nil
}

// UpdateRadius updates the consumer's area-of-interest radius.
func (repo *consumerRepository) UpdateRadius(ctx context.Context, id uuid.UUID, radiusMiles float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConsumerModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"radius_miles": radiusMiles,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update radius")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConsumerNotFound
	}

	return nil
}

// UpdateAutoFavoriteThreshold updates the auto-favorite day threshold.
func (repo *consumerRepository) UpdateAutoFavoriteThreshold(ctx context.Context, id uuid.UUID, days int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConsumerModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"auto_favorite_threshold_days": days,
			"updated_at":                   time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update auto-favorite threshold")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConsumerNotFound
	}

	return nil
}

// DeactivateConsumer marks the consumer inactive. Consumer rows are never
// hard-deleted.
func (repo *consumerRepository) DeactivateConsumer(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ConsumerModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"active":     false,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate consumer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrConsumerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toConsumerDomain converts a GORM ConsumerModel to a domain Consumer entity.
func toConsumerDomain(data *model.ConsumerModel) *entity.Consumer {
	if data == nil {
		return nil
	}

	consumer := &entity.Consumer{
		ID:                        data.ID,
		Email:                     data.Email,
		Name:                      data.Name,
		PasswordHash:              data.PasswordHash,
		RadiusMiles:               data.RadiusMiles,
		AutoFavoriteThresholdDays: data.AutoFavoriteThresholdDays,
		Active:                    data.Active,
		CreatedAt:                 data.CreatedAt,
		UpdatedAt:                 data.UpdatedAt,
	}

	if data.Address != "" || data.Latitude != nil {
		location := &entity.DeliveryLocation{Address: data.Address}
		if data.Latitude != nil && data.Longitude != nil {
			location.Coordinates = &entity.Coordinates{
				Latitude:  *data.Latitude,
				Longitude: *data.Longitude,
			}
		}
		consumer.DeliveryLocation = location
	}

	return consumer
}

// fromConsumerDomain converts a domain Consumer entity to a GORM ConsumerModel.
func fromConsumerDomain(data *entity.Consumer) *model.ConsumerModel {
	if data == nil {
		return nil
	}

	consumerM := &model.ConsumerModel{
		ID:                        data.ID,
		Email:                     data.Email,
		Name:                      data.Name,
		PasswordHash:              data.PasswordHash,
		RadiusMiles:               data.RadiusMiles,
		AutoFavoriteThresholdDays: data.AutoFavoriteThresholdDays,
		Active:                    data.Active,
		CreatedAt:                 data.CreatedAt,
		UpdatedAt:                 data.UpdatedAt,
	}

	if data.DeliveryLocation != nil {
		consumerM.Address = data.DeliveryLocation.Address
		if data.DeliveryLocation.Coordinates != nil {
			lat := data.DeliveryLocation.Coordinates.Latitude
			lon := data.DeliveryLocation.Coordinates.Longitude
			consumerM.Latitude = &lat
			consumerM.Longitude = &lon
		}
	}

	return consumerM
}
