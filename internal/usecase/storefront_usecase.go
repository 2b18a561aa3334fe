package usecase

import (
	"context"

	"verdeluxe/internal/domain/entity"
	"verdeluxe/internal/domain/repository"

	"github.com/google/uuid"
)

type WishlistUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)
	// Add is idempotent.
	Add(ctx context.Context, userID, plantID uuid.UUID) (*entity.WishlistItem, error)
	Remove(ctx context.Context, userID, plantID uuid.UUID) error
}

type SubscriberList struct {
	Subscribers []*entity.NewsletterSubscriber `json:"subscribers"`
	Total       int64                          `json:"total"`
}

type NewsletterUsecase interface {
	// Subscribe is idempotent and re-activates a lapsed subscriber.
	Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscriber, error)
	List(ctx context.Context, page repository.Page) (*SubscriberList, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContentInput struct {
	Title string `json:"title" validate:"max=200"`
	Body  string `json:"body"`
}

type ContentUsecase interface {
	Get(ctx context.Context, key string) (*entity.SiteContent, error)
	List(ctx context.Context) ([]*entity.SiteContent, error)
	Upsert(ctx context.Context, key string, input *ContentInput) (*entity.SiteContent, error)
	Delete(ctx context.Context, key string) error
}

// DeviceInfo represents device information for registration
type DeviceInfo struct {
	FCMToken string          `json:"fcmToken" validate:"required"`
	DeviceID string          `json:"deviceId" validate:"required,max=255"`
	Platform entity.Platform `json:"platform" validate:"required,oneof=ios android web"`
}

type DeviceUsecase interface {
	// RegisterDevice registers a device or refreshes its FCM token.
	RegisterDevice(ctx context.Context, userID uuid.UUID, info *DeviceInfo) (*entity.UserDevice, error)
}
