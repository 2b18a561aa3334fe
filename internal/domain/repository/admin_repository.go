package repository

import (
	"context"
	"time"

	"verdeluxe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrAdminUsernameTaken = errors.New("admin username already exists")
)

type AdminRepository interface {
	// Lock serializes admin creation until the surrounding transaction ends.
	Lock(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminCredential, error)
	FindByUsername(ctx context.Context, username string) (*entity.AdminCredential, error)
	Create(ctx context.Context, admin *entity.AdminCredential) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
