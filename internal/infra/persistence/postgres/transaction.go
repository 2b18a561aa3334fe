// Package postgres implements the repository contracts on GORM and PostgreSQL.
package postgres

import (
	"context"

	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/errors"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory builds repositories on one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewPlantRepository() repository.PlantRepository {
	return NewPlantRepository(f.tx)
}

func (f *gormRepositoryFactory) NewCartRepository() repository.CartRepository {
	return NewCartRepository(f.tx)
}

func (f *gormRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return NewOrderRepository(f.tx)
}

func (f *gormRepositoryFactory) NewAdminRepository() repository.AdminRepository {
	return NewAdminRepository(f.tx)
}

func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn in a transaction, rolling back on error or panic.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Join(err, errors.Wrap(rbErr, "transaction rollback failed"))
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
