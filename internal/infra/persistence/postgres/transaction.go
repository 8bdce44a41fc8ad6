package postgres

import (
	"context"
	"fmt"

	"github.com/alfredtoussaint-cpu/dealshaq/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// NewConsumerRepository creates a consumer repository bound to the transaction.
func (f *gormRepositoryFactory) NewConsumerRepository() repository.ConsumerRepository {
	return NewConsumerRepository(f.tx)
}

// NewRetailerRepository creates a retailer repository bound to the transaction.
func (f *gormRepositoryFactory) NewRetailerRepository() repository.RetailerRepository {
	return NewRetailerRepository(f.tx)
}

// NewRosterRepository creates a roster repository bound to the transaction.
func (f *gormRepositoryFactory) NewRosterRepository() repository.RosterRepository {
	return NewRosterRepository(f.tx)
}

// NewFavoriteRepository creates a favorite repository bound to the transaction.
func (f *gormRepositoryFactory) NewFavoriteRepository() repository.FavoriteRepository {
	return NewFavoriteRepository(f.tx)
}

// NewDealRepository creates a deal repository bound to the transaction.
func (f *gormRepositoryFactory) NewDealRepository() repository.DealRepository {
	return NewDealRepository(f.tx)
}

// NewNotificationRepository creates a notification repository bound to the transaction.
func (f *gormRepositoryFactory) NewNotificationRepository() repository.NotificationRepository {
	return NewNotificationRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Roll back on panic so a failing callback never leaks an open
	// transaction, then re-panic for the outer layers.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
