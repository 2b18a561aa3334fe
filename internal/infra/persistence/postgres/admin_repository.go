package postgres

import (
	"context"
	"time"

	"verdeluxe/internal/domain/entity"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (repo *adminRepository) Lock(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).Exec("LOCK TABLE admin_credentials IN SHARE ROW EXCLUSIVE MODE").Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to lock admin credentials")
	}

	return nil
}

func (repo *adminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.AdminCredentialModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count admins")
	}

	return count, nil
}

func (repo *adminRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminCredential, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *adminRepository) FindByUsername(ctx context.Context, username string) (*entity.AdminCredential, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *adminRepository) findOne(ctx context.Context, query string, arg any) (*entity.AdminCredential, error) {
	var adminM model.AdminCredentialModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&adminM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin")
	}

	return toAdminDomain(&adminM), nil
}

func (repo *adminRepository) Create(ctx context.Context, admin *entity.AdminCredential) error {
	adminM := &model.AdminCredentialModel{
		ID:           admin.ID,
		Username:     admin.Username,
		Email:        admin.Email,
		PasswordHash: admin.PasswordHash,
		CreatedAt:    admin.CreatedAt,
	}
	if err := repo.db.WithContext(ctx).Create(adminM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrAdminUsernameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin")
	}
	admin.CreatedAt = adminM.CreatedAt

	return nil
}

func (repo *adminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AdminCredentialModel{}).
		Where("id = ?", id).
		Update("last_login_at", at)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to record admin login")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAdminNotFound
	}

	return nil
}

func toAdminDomain(data *model.AdminCredentialModel) *entity.AdminCredential {
	return &entity.AdminCredential{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		LastLoginAt:  data.LastLoginAt,
		CreatedAt:    data.CreatedAt,
	}
}
