package impl

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"verdeluxe/internal/domain/entity"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/domain/service"
	mockRepo "verdeluxe/internal/mocks/repository"
	"verdeluxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)

	return userServiceFixtures{
		service:  NewUserService(userRepo, slog.New(slog.DiscardHandler)),
		userRepo: userRepo,
	}
}

func TestUserService_EnsureUser_CreatesOnFirstSignIn(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	identity := &service.Identity{UID: "firebase-uid", Email: "ivy@example.com", DisplayName: "Ivy"}

	fx.userRepo.EXPECT().FindByFirebaseUID(ctx, "firebase-uid").Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.FirebaseUID == "firebase-uid" && user.Email == "ivy@example.com"
		})).
		Return(nil)

	user, err := fx.service.EnsureUser(ctx, identity)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "Ivy", user.DisplayName)
}

func TestUserService_EnsureUser_Existing(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), FirebaseUID: "firebase-uid"}
	fx.userRepo.EXPECT().FindByFirebaseUID(ctx, "firebase-uid").Return(existing, nil)

	user, err := fx.service.EnsureUser(ctx, &service.Identity{UID: "firebase-uid"})
	require.NoError(t, err)
	assert.Same(t, existing, user)
}

func TestUserService_EnsureUser_ConcurrentCreate(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	existing := &entity.User{ID: uuid.New(), FirebaseUID: "firebase-uid"}
	fx.userRepo.EXPECT().FindByFirebaseUID(ctx, "firebase-uid").Return(nil, repository.ErrUserNotFound).Once()
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrUserAlreadyExists)
	fx.userRepo.EXPECT().FindByFirebaseUID(ctx, "firebase-uid").Return(existing, nil).Once()

	user, err := fx.service.EnsureUser(ctx, &service.Identity{UID: "firebase-uid"})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)
}

func TestUserService_EnsureUser_DeletedAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	deletedAt := time.Now()
	fx.userRepo.EXPECT().
		FindByFirebaseUID(ctx, "firebase-uid").
		Return(&entity.User{ID: uuid.New(), DeletedAt: &deletedAt}, nil)

	_, err := fx.service.EnsureUser(ctx, &service.Identity{UID: "firebase-uid"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestUserService_UpdateDisplayName(t *testing.T) {
	ctx := context.Background()

	t.Run("trims and saves", func(t *testing.T) {
		fx := createTestUserService(t)
		user := &entity.User{ID: uuid.New(), DisplayName: "old"}
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

		updated, err := fx.service.UpdateDisplayName(ctx, user.ID, "  Rosemary  ")
		require.NoError(t, err)
		assert.Equal(t, "Rosemary", updated.DisplayName)
	})

	t.Run("blank", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.UpdateDisplayName(ctx, uuid.New(), "   ")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("too long", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.UpdateDisplayName(ctx, uuid.New(), strings.Repeat("a", 121))
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	missing := uuid.New()
	fx.userRepo.EXPECT().SoftDelete(ctx, missing).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
