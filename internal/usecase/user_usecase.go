package usecase

import (
	"context"

	"verdeluxe/internal/domain/entity"
	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/domain/service"

	"github.com/google/uuid"
)

type UserList struct {
	Users []*entity.User `json:"users"`
	Total int64          `json:"total"`
}

// UserUsecase manages customer accounts.
type UserUsecase interface {
	// EnsureUser returns the user for a verified identity, creating it on
	// first sign-in. Soft deleted users are refused.
	EnsureUser(ctx context.Context, identity *service.Identity) (*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) (*entity.User, error)
	ListUsers(ctx context.Context, page repository.Page) (*UserList, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}
