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

// dealRepository implements the repository.DealRepository interface.
type dealRepository struct {
	db *gorm.DB
}

// NewDealRepository is the constructor for dealRepository.
func NewDealRepository(db *gorm.DB) repository.DealRepository {
	return &dealRepository{
		db: db,
	}
}

// CreateDeal persists a new deal.
func (repo *dealRepository) CreateDeal(ctx context.Context, deal *entity.Deal) error {
	dealM := fromDealDomain(deal)

	if err := repo.db.WithContext(ctx).Create(dealM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRetailerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create deal")
	}

	return nil
}

// FindDealByID retrieves a deal by its unique ID.
func (repo *dealRepository) FindDealByID(ctx context.Context, id uuid.UUID) (*entity.Deal, error) {
	var dealM model.DealModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&dealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDealNotFound
		}

		return nil, errors.Wrap(err, "failed to find deal by ID")
	}

	return toDealDomain(&dealM), nil
}

// FindDealsByRetailer returns every deal posted by the retailer, newest first.
func (repo *dealRepository) FindDealsByRetailer(ctx context.Context, retailerID uuid.UUID) ([]*entity.Deal, error) {
	var dealModels []*model.DealModel

	if err := repo.db.WithContext(ctx).
		Where("retailer_id = ?", retailerID).
		Order("posted_at DESC").
		Find(&dealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find deals by retailer")
	}

	deals := make([]*entity.Deal, 0, len(dealModels))
	for _, dealM := range dealModels {
		deals = append(deals, toDealDomain(dealM))
	}

	return deals, nil
}

// FindAvailableDealsByRetailer returns the retailer's deals that are still
// available and unexpired.
func (repo *dealRepository) FindAvailableDealsByRetailer(ctx context.Context, retailerID uuid.UUID) ([]*entity.Deal, error) {
	var dealModels []*model.DealModel

	if err := repo.db.WithContext(ctx).
		Where("retailer_id = ? AND status = ? AND expiry > ?",
			retailerID, string(entity.DealAvailable), time.Now()).
		Order("posted_at DESC").
		Find(&dealModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find available deals by retailer")
	}

	deals := make([]*entity.Deal, 0, len(dealModels))
	for _, dealM := range dealModels {
		deals = append(deals, toDealDomain(dealM))
	}

	return deals, nil
}

// DecrementQuantity atomically reduces the remaining quantity. The guard
// in the WHERE clause keeps quantity from ever going negative under
// concurrent claims; a deal drained to zero flips to unavailable.
func (repo *dealRepository) DecrementQuantity(ctx context.Context, id uuid.UUID, by int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DealModel{}).
		Where("id = ? AND quantity >= ?", id, by).
		Update("quantity", gorm.Expr("quantity - ?", by))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement deal quantity")
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing deal from one without enough stock.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.DealModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check deal existence")
		}
		if count == 0 {
			return repository.ErrDealNotFound
		}

		return repository.ErrDealSoldOut
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.DealModel{}).
		Where("id = ? AND quantity = 0 AND status = ?", id, string(entity.DealAvailable)).
		Update("status", string(entity.DealUnavailable)).Error; err != nil {
		return errors.Wrap(err, "failed to mark drained deal unavailable")
	}

	return nil
}

// UpdateDealStatus sets the deal availability status.
func (repo *dealRepository) UpdateDealStatus(ctx context.Context, id uuid.UUID, status entity.DealStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DealModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update deal status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDealNotFound
	}

	return nil
}

// CountReadyDeals counts the retailer's available deals with at least
// minQuantity remaining.
func (repo *dealRepository) CountReadyDeals(ctx context.Context, retailerID uuid.UUID, minQuantity int) (int, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DealModel{}).
		Where("retailer_id = ? AND status = ? AND quantity >= ? AND expiry > ?",
			retailerID, string(entity.DealAvailable), minQuantity, time.Now()).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count ready deals")
	}

	return int(count), nil
}

// --- Mapper Functions ---

// toDealDomain converts a GORM DealModel to a domain Deal entity.
func toDealDomain(data *model.DealModel) *entity.Deal {
	if data == nil {
		return nil
	}

	return &entity.Deal{
		ID:                      data.ID,
		RetailerID:              data.RetailerID,
		Name:                    data.Name,
		Category:                data.Category,
		Brand:                   data.Brand,
		RegularPrice:            data.RegularPrice,
		DealPrice:               data.DealPrice,
		DiscountLevel:           data.DiscountLevel,
		RetailerDiscountPercent: data.RetailerDiscountPercent,
		ConsumerDiscountPercent: data.ConsumerDiscountPercent,
		Quantity:                data.Quantity,
		Expiry:                  data.Expiry,
		Status:                  entity.DealStatus(data.Status),
		PostedAt:                data.PostedAt,
	}
}

// fromDealDomain converts a domain Deal entity to a GORM DealModel.
func fromDealDomain(data *entity.Deal) *model.DealModel {
	if data == nil {
		return nil
	}

	return &model.DealModel{
		ID:                      data.ID,
		RetailerID:              data.RetailerID,
		Name:                    data.Name,
		Category:                data.Category,
		Brand:                   data.Brand,
		RegularPrice:            data.RegularPrice,
		DealPrice:               data.DealPrice,
		DiscountLevel:           data.DiscountLevel,
		RetailerDiscountPercent: data.RetailerDiscountPercent,
		ConsumerDiscountPercent: data.ConsumerDiscountPercent,
		Quantity:                data.Quantity,
		Expiry:                  data.Expiry,
		Status:                  string(data.Status),
		PostedAt:                data.PostedAt,
	}
}
