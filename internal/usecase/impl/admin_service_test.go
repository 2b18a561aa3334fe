package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"verdeluxe/config"
	"verdeluxe/internal/domain/entity"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/domain/service"
	"verdeluxe/internal/infra/auth"
	mockRepo "verdeluxe/internal/mocks/repository"
	mockService "verdeluxe/internal/mocks/service"
	"verdeluxe/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testAdminPassword = "Greenhouse42"

type adminServiceFixtures struct {
	service      usecase.AdminUsecase
	txManager    *mockRepo.TransactionManager
	adminRepo    *mockRepo.MockAdminRepository
	txAdminRepo  *mockRepo.MockAdminRepository
	hasher       service.PasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	txAdminRepo := mockRepo.NewMockAdminRepository(t)
	tokenService := mockService.NewMockTokenService(t)
	txManager := mockRepo.NewTransactionManager(&mockRepo.RepositoryFactory{Admins: txAdminRepo})
	hasher := auth.NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	return adminServiceFixtures{
		service: NewAdminService(AdminServiceParams{
			TxManager:    txManager,
			AdminRepo:    adminRepo,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       slog.New(slog.DiscardHandler),
		}),
		txManager:    txManager,
		adminRepo:    adminRepo,
		txAdminRepo:  txAdminRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func (f adminServiceFixtures) storedAdmin(t *testing.T) *entity.AdminCredential {
	hash, err := f.hasher.Hash(testAdminPassword)
	require.NoError(t, err)

	return &entity.AdminCredential{
		ID:           uuid.New(),
		Username:     "gardener",
		Email:        "gardener@verdeluxe.test",
		PasswordHash: hash,
	}
}

func TestAdminService_CreateAdmin_Bootstrap(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.txAdminRepo.EXPECT().Lock(ctx).Return(nil)
	fx.txAdminRepo.EXPECT().Count(ctx).Return(int64(0), nil)
	fx.txAdminRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AdminCredential")).Return(nil)

	admin, err := fx.service.CreateAdmin(ctx, &usecase.CreateAdminInput{
		Username: " gardener ",
		Email:    "Gardener@VerdeLuxe.test",
		Password: testAdminPassword,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "gardener", admin.Username)
	assert.Equal(t, "gardener@verdeluxe.test", admin.Email)
	assert.NotEqual(t, testAdminPassword, admin.PasswordHash)
	assert.True(t, fx.hasher.Check(testAdminPassword, admin.PasswordHash))
	assert.Equal(t, 1, fx.txManager.Committed)
}

func TestAdminService_CreateAdmin_SecondBootstrapRejected(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.txAdminRepo.EXPECT().Lock(ctx).Return(nil)
	fx.txAdminRepo.EXPECT().Count(ctx).Return(int64(1), nil)

	_, err := fx.service.CreateAdmin(ctx, &usecase.CreateAdminInput{
		Username: "intruder",
		Email:    "intruder@example.com",
		Password: testAdminPassword,
	}, nil)
	assert.ErrorIs(t, err, domainerrors.ErrAdminAlreadyExists)
	assert.Equal(t, 1, fx.txManager.RolledBack)
}

func TestAdminService_CreateAdmin_ByExistingAdmin(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	actorID := uuid.New()
	fx.txAdminRepo.EXPECT().Lock(ctx).Return(nil)
	fx.txAdminRepo.EXPECT().Count(ctx).Return(int64(1), nil)
	fx.txAdminRepo.EXPECT().FindByID(ctx, actorID).Return(&entity.AdminCredential{ID: actorID}, nil)
	fx.txAdminRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.AdminCredential")).Return(nil)

	admin, err := fx.service.CreateAdmin(ctx, &usecase.CreateAdminInput{
		Username: "botanist",
		Email:    "botanist@example.com",
		Password: testAdminPassword,
	}, &actorID)
	require.NoError(t, err)
	assert.Equal(t, "botanist", admin.Username)
}

func TestAdminService_CreateAdmin_WeakPassword(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.CreateAdmin(context.Background(), &usecase.CreateAdminInput{
		Username: "gardener",
		Email:    "gardener@example.com",
		Password: "short",
	}, nil)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	assert.Zero(t, fx.txManager.Executions)
}

func TestAdminService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("correct password issues admin tokens", func(t *testing.T) {
		fx := createTestAdminService(t)
		admin := fx.storedAdmin(t)

		fx.adminRepo.EXPECT().FindByUsername(ctx, "gardener").Return(admin, nil)
		fx.tokenService.EXPECT().GenerateTokens(admin.ID, []string{"admin"}).Return("access", "refresh", nil)
		fx.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)
		fx.adminRepo.EXPECT().UpdateLastLogin(ctx, admin.ID, mock.AnythingOfType("time.Time")).Return(nil)

		out, err := fx.service.Login(ctx, "gardener", testAdminPassword)
		require.NoError(t, err)
		assert.Equal(t, "access", out.Tokens.AccessToken)
		assert.Equal(t, "refresh", out.Tokens.RefreshToken)
		assert.NotNil(t, out.Admin.LastLoginAt)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAdminService(t)
		admin := fx.storedAdmin(t)
		fx.adminRepo.EXPECT().FindByUsername(ctx, "gardener").Return(admin, nil)

		_, err := fx.service.Login(ctx, "gardener", "Greenhouse43")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown username looks like a wrong password", func(t *testing.T) {
		fx := createTestAdminService(t)
		fx.adminRepo.EXPECT().FindByUsername(ctx, "nobody").Return(nil, repository.ErrAdminNotFound)

		_, err := fx.service.Login(ctx, "nobody", testAdminPassword)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAdminService_Authenticate(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()

	t.Run("access token with admin role", func(t *testing.T) {
		fx := createTestAdminService(t)
		fx.tokenService.EXPECT().ValidateToken("good").Return(&service.Claims{
			UserID: adminID,
			Roles:  []string{"admin"},
			Type:   service.TokenTypeAccess,
		}, nil)
		fx.adminRepo.EXPECT().FindByID(ctx, adminID).Return(&entity.AdminCredential{ID: adminID}, nil)

		admin, err := fx.service.Authenticate(ctx, "good")
		require.NoError(t, err)
		assert.Equal(t, adminID, admin.ID)
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		fx := createTestAdminService(t)
		fx.tokenService.EXPECT().ValidateToken("refresh").Return(&service.Claims{
			UserID: adminID,
			Roles:  []string{"admin"},
			Type:   service.TokenTypeRefresh,
		}, nil)

		_, err := fx.service.Authenticate(ctx, "refresh")
		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})

	t.Run("customer role is rejected", func(t *testing.T) {
		fx := createTestAdminService(t)
		fx.tokenService.EXPECT().ValidateToken("customer").Return(&service.Claims{
			UserID: adminID,
			Roles:  []string{"customer"},
			Type:   service.TokenTypeAccess,
		}, nil)

		_, err := fx.service.Authenticate(ctx, "customer")
		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})

	t.Run("removed admin", func(t *testing.T) {
		fx := createTestAdminService(t)
		fx.tokenService.EXPECT().ValidateToken("orphan").Return(&service.Claims{
			UserID: adminID,
			Roles:  []string{"admin"},
			Type:   service.TokenTypeAccess,
		}, nil)
		fx.adminRepo.EXPECT().FindByID(ctx, adminID).Return(nil, repository.ErrAdminNotFound)

		_, err := fx.service.Authenticate(ctx, "orphan")
		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})
}

func TestAdminService_Refresh(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	adminID := uuid.New()
	fx.tokenService.EXPECT().ValidateToken("refresh").Return(&service.Claims{
		UserID: adminID,
		Roles:  []string{"admin"},
		Type:   service.TokenTypeRefresh,
	}, nil)
	fx.adminRepo.EXPECT().FindByID(ctx, adminID).Return(&entity.AdminCredential{ID: adminID}, nil)
	fx.tokenService.EXPECT().GenerateTokens(adminID, []string{"admin"}).Return("access-2", "refresh-2", nil)
	fx.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)

	tokens, err := fx.service.Refresh(ctx, "refresh")
	require.NoError(t, err)
	assert.Equal(t, "access-2", tokens.AccessToken)
}

func TestAdminService_CheckExists(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.adminRepo.EXPECT().Count(ctx).Return(int64(0), nil).Once()
	fx.adminRepo.EXPECT().Count(ctx).Return(int64(2), nil).Once()

	exists, err := fx.service.CheckExists(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = fx.service.CheckExists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}
