package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"verdeluxe/internal/domain/entity"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/domain/service"
	"verdeluxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxDisplayNameLength = 120

type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (srv *userService) EnsureUser(ctx context.Context, identity *service.Identity) (*entity.User, error) {
	if identity == nil || identity.UID == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	user, err := srv.userRepo.FindByFirebaseUID(ctx, identity.UID)
	if err == nil {
		if user.IsDeleted() {
			return nil, errors.WithStack(domainerrors.ErrForbidden.WithDetails("account disabled"))
		}

		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, translateError(err, "failed to find user")
	}

	now := time.Now().UTC()
	user = &entity.User{
		ID:          uuid.New(),
		FirebaseUID: identity.UID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			// A concurrent first request created the row.
			existing, findErr := srv.userRepo.FindByFirebaseUID(ctx, identity.UID)
			if findErr != nil {
				return nil, translateError(findErr, "failed to find user")
			}

			return existing, nil
		}

		return nil, translateError(err, "failed to create user")
	}

	loggerFrom(ctx, srv.logger).Info("User created on first sign-in", slog.String("user_id", user.ID.String()))

	return user, nil
}

func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "failed to find user")
	}

	return user, nil
}

func (srv *userService) UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) (*entity.User, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" || len(displayName) > maxDisplayNameLength {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("display name must be 1 to 120 characters"))
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "failed to find user")
	}

	user.DisplayName = displayName
	user.UpdatedAt = time.Now().UTC()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, translateError(err, "failed to update user")
	}

	return user, nil
}

func (srv *userService) ListUsers(ctx context.Context, page repository.Page) (*usecase.UserList, error) {
	users, total, err := srv.userRepo.List(ctx, page.Normalize())
	if err != nil {
		return nil, translateError(err, "failed to list users")
	}
	if users == nil {
		users = []*entity.User{}
	}

	return &usecase.UserList{Users: users, Total: total}, nil
}

func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.SoftDelete(ctx, id); err != nil {
		return translateError(err, "failed to delete user")
	}

	loggerFrom(ctx, srv.logger).Info("User soft deleted", slog.String("user_id", id.String()))

	return nil
}
