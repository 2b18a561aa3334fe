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

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) FindByFirebaseUID(ctx context.Context, uid string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).
		Unscoped().
		Where("firebase_uid = ?", uid).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by firebase uid")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)
	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email":        user.Email,
			"display_name": user.DisplayName,
			"updated_at":   user.UpdatedAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) List(ctx context.Context, page repository.Page) ([]*entity.User, int64, error) {
	page = page.Normalize()

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count users")
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&userModels).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

func (repo *userRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func toUserDomain(data *model.UserModel) *entity.User {
	user := &entity.User{
		ID:          data.ID,
		FirebaseUID: data.FirebaseUID,
		Email:       data.Email,
		DisplayName: data.DisplayName,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.DeletedAt.Valid {
		deletedAt := data.DeletedAt.Time
		user.DeletedAt = &deletedAt
	}

	return user
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:          data.ID,
		FirebaseUID: data.FirebaseUID,
		Email:       data.Email,
		DisplayName: data.DisplayName,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
