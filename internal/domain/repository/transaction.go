package repository

import "context"

// TransactionManager runs compound writes atomically without exposing the
// database driver to the usecase layer.
type TransactionManager interface {
	// Execute runs fn within a database transaction. If fn returns an error
	// the transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	NewPlantRepository() PlantRepository
	NewCartRepository() CartRepository
	NewOrderRepository() OrderRepository
	NewAdminRepository() AdminRepository
}

// Page bounds a listing. A zero Limit means the repository default.
type Page struct {
	Limit  int
	Offset int
}

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// Normalize clamps the page to sane bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}

	return p
}
