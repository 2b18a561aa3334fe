// Package repository defines the persistence contracts the usecase layer
// depends on. Implementations live in internal/infra/persistence.
package repository

import (
	"context"

	"verdeluxe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByFirebaseUID also returns soft-deleted users so sign-in can refuse them.
	FindByFirebaseUID(ctx context.Context, uid string) (*entity.User, error)

	// Create returns ErrUserAlreadyExists when the Firebase UID is taken.
	Create(ctx context.Context, user *entity.User) error

	Update(ctx context.Context, user *entity.User) error

	List(ctx context.Context, page Page) ([]*entity.User, int64, error)

	SoftDelete(ctx context.Context, id uuid.UUID) error
}
