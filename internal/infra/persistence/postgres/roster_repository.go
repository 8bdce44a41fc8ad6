package postgres

import (
	"context"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/entity"
	domainerrors "github.com/alfredtoussaint-cpu/dealshaq/internal/domain/errors"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/repository"
	"github.com/alfredtoussaint-cpu/dealshaq/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// rosterRepository implements the repository.RosterRepository interface.
type rosterRepository struct {
	db *gorm.DB
}

// NewRosterRepository is the constructor for rosterRepository.
func NewRosterRepository(db *gorm.DB) repository.RosterRepository {
	return &rosterRepository{
		db: db,
	}
}

// FindEntriesByConsumer returns every roster entry for a consumer.
func (repo *rosterRepository) FindEntriesByConsumer(ctx context.Context, consumerID uuid.UUID) ([]*entity.RosterEntry, error) {
	var entryModels []*model.RosterEntryModel

	if err := repo.db.WithContext(ctx).
		Where("consumer_id = ?", consumerID).
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find roster entries by consumer")
	}

	entries := make([]*entity.RosterEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toRosterEntryDomain(entryM))
	}

	return entries, nil
}

// FindEntry returns the entry for one consumer-retailer pair.
func (repo *rosterRepository) FindEntry(ctx context.Context, consumerID, retailerID uuid.UUID) (*entity.RosterEntry, error) {
	var entryM model.RosterEntryModel

	if err := repo.db.WithContext(ctx).
		Where("consumer_id = ? AND retailer_id = ?", consumerID, retailerID).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRosterEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find roster entry")
	}

	return toRosterEntryDomain(&entryM), nil
}

// CreateEntry inserts a new roster entry.
func (repo *rosterRepository) CreateEntry(ctx context.Context, entry *entity.RosterEntry) error {
	entryM := fromRosterEntryDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("roster entry already exists for retailer")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create roster entry")
	}

	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// UpdateEntry replaces the mutable fields of an existing entry.
func (repo *rosterRepository) UpdateEntry(ctx context.Context, entry *entity.RosterEntry) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RosterEntryModel{}).
		Where("id = ?", entry.ID).
		Updates(map[string]any{
			"distance_miles":   entry.DistanceMiles,
			"inside_radius":    entry.InsideRadius,
			"manually_added":   entry.ManuallyAdded,
			"manually_removed": entry.ManuallyRemoved,
			"updated_at":       entry.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update roster entry")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRosterEntryNotFound
	}

	return nil
}

// DeleteEntry removes an entry. Deleting a missing entry is not an error,
// so pruning stays idempotent.
func (repo *rosterRepository) DeleteEntry(ctx context.Context, consumerID, retailerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("consumer_id = ? AND retailer_id = ?", consumerID, retailerID).
		Delete(&model.RosterEntryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete roster entry")
	}

	return nil
}

// DeleteEntriesByConsumer removes every roster entry of the consumer.
func (repo *rosterRepository) DeleteEntriesByConsumer(ctx context.Context, consumerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("consumer_id = ?", consumerID).
		Delete(&model.RosterEntryModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete roster entries by consumer")
	}

	return nil
}

// FindVisibleConsumerIDsByRetailer returns the IDs of every consumer whose
// roster currently shows the retailer. Deactivated consumers are excluded,
// so stale entries never receive notifications.
func (repo *rosterRepository) FindVisibleConsumerIDsByRetailer(ctx context.Context, retailerID uuid.UUID) ([]uuid.UUID, error) {
	var consumerIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.RosterEntryModel{}).
		Joins("JOIN consumers ON consumers.id = roster_entries.consumer_id").
		Where("roster_entries.retailer_id = ? AND consumers.active = ?", retailerID, true).
		Where("(roster_entries.inside_radius = ? OR roster_entries.manually_added = ?) AND roster_entries.manually_removed = ?",
			true, true, false).
		Pluck("roster_entries.consumer_id", &consumerIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visible consumers by retailer")
	}

	return consumerIDs, nil
}

// --- Mapper Functions ---

// toRosterEntryDomain converts a GORM RosterEntryModel to a domain RosterEntry entity.
func toRosterEntryDomain(data *model.RosterEntryModel) *entity.RosterEntry {
	if data == nil {
		return nil
	}

	return &entity.RosterEntry{
		ID:              data.ID,
		ConsumerID:      data.ConsumerID,
		RetailerID:      data.RetailerID,
		DistanceMiles:   data.DistanceMiles,
		InsideRadius:    data.InsideRadius,
		ManuallyAdded:   data.ManuallyAdded,
		ManuallyRemoved: data.ManuallyRemoved,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromRosterEntryDomain converts a domain RosterEntry entity to a GORM RosterEntryModel.
func fromRosterEntryDomain(data *entity.RosterEntry) *model.RosterEntryModel {
	if data == nil {
		return nil
	}

	return &model.RosterEntryModel{
		ID:              data.ID,
		ConsumerID:      data.ConsumerID,
		RetailerID:      data.RetailerID,
		DistanceMiles:   data.DistanceMiles,
		InsideRadius:    data.InsideRadius,
		ManuallyAdded:   data.ManuallyAdded,
		ManuallyRemoved: data.ManuallyRemoved,
		UpdatedAt:       data.UpdatedAt,
	}
}
