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
	"go.uber.org/fx"
)

var adminRoles = entity.Roles{entity.RoleAdmin}

type adminService struct {
	txManager    repository.TransactionManager
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:    params.TxManager,
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *adminService) CheckExists(ctx context.Context) (bool, error) {
	count, err := srv.adminRepo.Count(ctx)
	if err != nil {
		return false, translateError(err, "failed to count admins")
	}

	return count > 0, nil
}

func (srv *adminService) CreateAdmin(ctx context.Context, input *usecase.CreateAdminInput, actorID *uuid.UUID) (*entity.AdminCredential, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("username is required"))
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.WithStack(err)
	}

	// Hash outside the transaction; bcrypt is deliberately slow.
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	admin := &entity.AdminCredential{
		ID:           uuid.New(),
		Username:     username,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		adminRepo := txRepoFactory.NewAdminRepository()

		if err := adminRepo.Lock(ctx); err != nil {
			return err
		}

		count, err := adminRepo.Count(ctx)
		if err != nil {
			return err
		}

		if count > 0 {
			if actorID == nil {
				return errors.WithStack(domainerrors.ErrAdminAlreadyExists)
			}
			if _, err := adminRepo.FindByID(ctx, *actorID); err != nil {
				if errors.Is(err, repository.ErrAdminNotFound) {
					return errors.WithStack(domainerrors.ErrForbidden)
				}

				return err
			}
		}

		return adminRepo.Create(ctx, admin)
	})
	if err != nil {
		return nil, translateError(err, "failed to create admin")
	}

	loggerFrom(ctx, srv.logger).Info("Admin created",
		slog.String("admin_id", admin.ID.String()),
		slog.String("username", admin.Username),
		slog.Bool("bootstrap", actorID == nil),
	)

	return admin, nil
}

func (srv *adminService) Login(ctx context.Context, username, password string) (*usecase.LoginOutput, error) {
	admin, err := srv.adminRepo.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			// Same answer as a wrong password.
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, translateError(err, "failed to find admin")
	}

	if !srv.hasher.Check(password, admin.PasswordHash) {
		loggerFrom(ctx, srv.logger).Warn("Admin login failed", slog.String("username", admin.Username))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	tokens, err := srv.issueTokens(admin.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := srv.adminRepo.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		loggerFrom(ctx, srv.logger).Warn("Failed to record admin login", slog.String("admin_id", admin.ID.String()), slog.Any("error", err))
	} else {
		admin.LastLoginAt = &now
	}

	loggerFrom(ctx, srv.logger).Info("Admin logged in", slog.String("admin_id", admin.ID.String()))

	return &usecase.LoginOutput{Admin: admin, Tokens: tokens}, nil
}

func (srv *adminService) Authenticate(ctx context.Context, accessToken string) (*entity.AdminCredential, error) {
	claims, err := srv.tokenService.ValidateToken(accessToken)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if claims.Type != service.TokenTypeAccess || !entity.RolesFromStrings(claims.Roles).Contains(entity.RoleAdmin) {
		return nil, errors.WithStack(domainerrors.ErrTokenInvalid)
	}

	return srv.findAdmin(ctx, claims.UserID)
}

func (srv *adminService) Refresh(ctx context.Context, refreshToken string) (*entity.TokenPair, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if claims.Type != service.TokenTypeRefresh {
		return nil, errors.WithStack(domainerrors.ErrTokenInvalid)
	}

	admin, err := srv.findAdmin(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return srv.issueTokens(admin.ID)
}

// findAdmin treats a token for a removed admin as invalid.
func (srv *adminService) findAdmin(ctx context.Context, id uuid.UUID) (*entity.AdminCredential, error) {
	admin, err := srv.adminRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return nil, errors.WithStack(domainerrors.ErrTokenInvalid)
		}

		return nil, translateError(err, "failed to find admin")
	}

	return admin, nil
}

func (srv *adminService) issueTokens(adminID uuid.UUID) (*entity.TokenPair, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(adminID, adminRoles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &entity.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().UTC().Add(srv.tokenService.GetAccessTokenDuration()),
	}, nil
}
