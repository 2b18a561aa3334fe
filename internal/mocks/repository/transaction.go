package repository

import (
	"context"

	"verdeluxe/internal/domain/repository"
)

// RepositoryFactory hands the configured mocks to transactional code.
type RepositoryFactory struct {
	Plants repository.PlantRepository
	Carts  repository.CartRepository
	Orders repository.OrderRepository
	Admins repository.AdminRepository
}

func (f *RepositoryFactory) NewPlantRepository() repository.PlantRepository { return f.Plants }
func (f *RepositoryFactory) NewCartRepository() repository.CartRepository   { return f.Carts }
func (f *RepositoryFactory) NewOrderRepository() repository.OrderRepository { return f.Orders }
func (f *RepositoryFactory) NewAdminRepository() repository.AdminRepository { return f.Admins }

// TransactionManager runs fn against Factory and records whether the
// transaction would have committed.
type TransactionManager struct {
	Factory    *RepositoryFactory
	Executions int
	Committed  int
	RolledBack int
}

func NewTransactionManager(factory *RepositoryFactory) *TransactionManager {
	return &TransactionManager{Factory: factory}
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	m.Executions++
	if err := ctx.Err(); err != nil {
		m.RolledBack++

		return err
	}

	if err := fn(m.Factory); err != nil {
		m.RolledBack++

		return err
	}
	m.Committed++

	return nil
}
