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

// retailerRepository implements the repository.RetailerRepository interface.
type retailerRepository struct {
	db *gorm.DB
}

// NewRetailerRepository is the constructor for retailerRepository.
func NewRetailerRepository(db *gorm.DB) repository.RetailerRepository {
	return &retailerRepository{
		db: db,
	}
}

// CreateRetailer persists a new retailer account.
func (repo *retailerRepository) CreateRetailer(ctx context.Context, retailer *entity.Retailer) error {
	retailerM := fromRetailerDomain(retailer)

	if err := repo.db.WithContext(ctx).Create(retailerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateRetailer
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required retailer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create retailer")
	}

	retailer.CreatedAt = retailerM.CreatedAt
	retailer.UpdatedAt = retailerM.UpdatedAt

	return nil
}

// FindRetailerByID retrieves a retailer by its unique ID.
func (repo *retailerRepository) FindRetailerByID(ctx context.Context, id uuid.UUID) (*entity.Retailer, error) {
	var retailerM model.RetailerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&retailerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRetailerNotFound
		}

		return nil, errors.Wrap(err, "failed to find retailer by ID")
	}

	return toRetailerDomain(&retailerM), nil
}

// FindRetailerByEmail retrieves a retailer by login email.
func (repo *retailerRepository) FindRetailerByEmail(ctx context.Context, email string) (*entity.Retailer, error) {
	var retailerM model.RetailerModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&retailerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRetailerNotFound
		}

		return nil, errors.Wrap(err, "failed to find retailer by email")
	}

	return toRetailerDomain(&retailerM), nil
}

// FindLocatableRetailers returns every active retailer with geocoded store
// coordinates, the candidate set for roster recomputation.
func (repo *retailerRepository) FindLocatableRetailers(ctx context.Context) ([]*entity.Retailer, error) {
	var retailerModels []*model.RetailerModel

	if err := repo.db.WithContext(ctx).
		Where("active = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", true).
		Find(&retailerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find locatable retailers")
	}

	retailers := make([]*entity.Retailer, 0, len(retailerModels))
	for _, retailerM := range retailerModels {
		retailers = append(retailers, toRetailerDomain(retailerM))
	}

	return retailers, nil
}

// UpdateRetailerProfile replaces the mutable profile fields.
func (repo *retailerRepository) UpdateRetailerProfile(ctx context.Context, retailer *entity.Retailer) error {
	updates := map[string]any{
		"store_name":  retailer.StoreName,
		"address":     retailer.Address,
		"latitude":    nil,
		"longitude":   nil,
		"store_hours": retailer.StoreHours,
		"logo_url":    retailer.LogoURL,
		"updated_at":  time.Now(),
	}
	if retailer.Coordinates != nil {
		updates["latitude"] = retailer.Coordinates.Latitude
		updates["longitude"] = retailer.Coordinates.Longitude
	}

	result := repo.db.WithContext(ctx).
		Model(&model.RetailerModel{}).
		Where("id = ?", retailer.ID).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update retailer profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRetailerNotFound
	}

	return nil
}

// UpdateStoreStatus sets the store lifecycle status.
func (repo *retailerRepository) UpdateStoreStatus(ctx context.Context, id uuid.UUID, status entity.StoreStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RetailerModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"store_status": string(status),
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update store status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRetailerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRetailerDomain converts a GORM RetailerModel to a domain Retailer entity.
func toRetailerDomain(data *model.RetailerModel) *entity.Retailer {
	if data == nil {
		return nil
	}

	retailer := &entity.Retailer{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		StoreName:    data.StoreName,
		PasswordHash: data.PasswordHash,
		Address:      data.Address,
		StoreHours:   data.StoreHours,
		LogoURL:      data.LogoURL,
		StoreStatus:  entity.StoreStatus(data.StoreStatus),
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.Latitude != nil && data.Longitude != nil {
		retailer.Coordinates = &entity.Coordinates{
			Latitude:  *data.Latitude,
			Longitude: *data.Longitude,
		}
	}

	return retailer
}

// fromRetailerDomain converts a domain Retailer entity to a GORM RetailerModel.
func fromRetailerDomain(data *entity.Retailer) *model.RetailerModel {
	if data == nil {
		return nil
	}

	retailerM := &model.RetailerModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		StoreName:    data.StoreName,
		PasswordHash: data.PasswordHash,
		Address:      data.Address,
		StoreHours:   data.StoreHours,
		LogoURL:      data.LogoURL,
		StoreStatus:  string(data.StoreStatus),
		Active:       data.Active,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.Coordinates != nil {
		lat := data.Coordinates.Latitude
		lon := data.Coordinates.Longitude
		retailerM.Latitude = &lat
		retailerM.Longitude = &lon
	}

	return retailerM
}
