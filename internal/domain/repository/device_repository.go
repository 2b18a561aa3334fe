package repository

import (
	"context"

	"verdeluxe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository persists push notification targets.
type DeviceRepository interface {
	// UpsertDevice creates the device or refreshes its token, keyed by
	// (user, device id), and marks it active.
	UpsertDevice(ctx context.Context, device *entity.UserDevice) (*entity.UserDevice, error)

	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateByTokens marks every device holding one of tokens inactive.
	DeactivateByTokens(ctx context.Context, tokens []string) (int64, error)
}
