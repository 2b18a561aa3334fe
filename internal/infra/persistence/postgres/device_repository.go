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
	"gorm.io/gorm/clause"
)

type deviceRepository struct {
	db *gorm.DB
}

func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.UserDevice) (*entity.UserDevice, error) {
	now := time.Now()
	deviceM := fromDeviceDomain(device)
	if deviceM.ID == uuid.Nil {
		deviceM.ID = uuid.New()
	}
	deviceM.IsActive = true
	deviceM.CreatedAt = now
	deviceM.UpdatedAt = now

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"fcm_token":  deviceM.FCMToken,
					"platform":   deviceM.Platform,
					"is_active":  true,
					"updated_at": now,
				}),
			},
			clause.Returning{},
		).
		Create(deviceM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	return toDeviceDomain(deviceM), nil
}

func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var deviceModels []*model.UserDeviceModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("updated_at DESC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token IN ?", tokens).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate devices")
	}

	return result.RowsAffected, nil
}

func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  entity.Platform(data.Platform),
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	return &model.UserDeviceModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  string(data.Platform),
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
