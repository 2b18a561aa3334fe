package usecase

import (
	"context"

	"verdeluxe/internal/domain/entity"

	"github.com/google/uuid"
)

type CreateAdminInput struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	Admin  *entity.AdminCredential `json:"admin"`
	Tokens *entity.TokenPair       `json:"tokens"`
}

// AdminUsecase authenticates administrators.
type AdminUsecase interface {
	CheckExists(ctx context.Context) (bool, error)
	// CreateAdmin bootstraps the first admin when actorID is nil. Once an
	// admin exists, only an authenticated admin may create more.
	CreateAdmin(ctx context.Context, input *CreateAdminInput, actorID *uuid.UUID) (*entity.AdminCredential, error)
	Login(ctx context.Context, username, password string) (*LoginOutput, error)
	// Authenticate validates an access token and returns its admin.
	Authenticate(ctx context.Context, accessToken string) (*entity.AdminCredential, error)
	Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error)
}
