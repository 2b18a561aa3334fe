package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"verdeluxe/internal/domain/entity"
	domainerrors "verdeluxe/internal/domain/errors"
	"verdeluxe/internal/domain/repository"
	"verdeluxe/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	plantRepo    repository.PlantRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, plantRepo repository.PlantRepository) usecase.WishlistUsecase {
	return &wishlistService{wishlistRepo: wishlistRepo, plantRepo: plantRepo}
}

func (srv *wishlistService) List(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	items, err := srv.wishlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, translateError(err, "failed to list wishlist")
	}
	if items == nil {
		items = []*entity.WishlistItem{}
	}

	return items, nil
}

func (srv *wishlistService) Add(ctx context.Context, userID, plantID uuid.UUID) (*entity.WishlistItem, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	plant, err := srv.plantRepo.FindByID(ctx, plantID)
	if err != nil {
		return nil, translateError(err, "failed to find plant")
	}
	if !plant.IsActive {
		return nil, errors.WithStack(domainerrors.ErrPlantUnavailable)
	}

	item, err := srv.wishlistRepo.Add(ctx, userID, plantID)
	if err != nil {
		return nil, translateError(err, "failed to add wishlist item")
	}
	item.Plant = plant

	return item, nil
}

func (srv *wishlistService) Remove(ctx context.Context, userID, plantID uuid.UUID) error {
	if userID == uuid.Nil {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	if err := srv.wishlistRepo.Remove(ctx, userID, plantID); err != nil {
		return translateError(err, "failed to remove wishlist item")
	}

	return nil
}

var fieldValidator = validator.New()

type newsletterService struct {
	newsletterRepo repository.NewsletterRepository
	logger         *slog.Logger
}

func NewNewsletterService(newsletterRepo repository.NewsletterRepository, logger *slog.Logger) usecase.NewsletterUsecase {
	return &newsletterService{newsletterRepo: newsletterRepo, logger: logger}
}

func (srv *newsletterService) Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := fieldValidator.Var(email, "required,email,max=254"); err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid email address"))
	}

	subscriber, err := srv.newsletterRepo.Subscribe(ctx, email)
	if err != nil {
		return nil, translateError(err, "failed to subscribe")
	}

	loggerFrom(ctx, srv.logger).Info("Newsletter subscription", slog.String("subscriber_id", subscriber.ID.String()))

	return subscriber, nil
}

func (srv *newsletterService) List(ctx context.Context, page repository.Page) (*usecase.SubscriberList, error) {
	subscribers, total, err := srv.newsletterRepo.List(ctx, page.Normalize())
	if err != nil {
		return nil, translateError(err, "failed to list subscribers")
	}
	if subscribers == nil {
		subscribers = []*entity.NewsletterSubscriber{}
	}

	return &usecase.SubscriberList{Subscribers: subscribers, Total: total}, nil
}

func (srv *newsletterService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.newsletterRepo.Delete(ctx, id); err != nil {
		return translateError(err, "failed to delete subscriber")
	}

	return nil
}

const maxContentKeyLength = 100

type contentService struct {
	contentRepo repository.ContentRepository
}

func NewContentService(contentRepo repository.ContentRepository) usecase.ContentUsecase {
	return &contentService{contentRepo: contentRepo}
}

func (srv *contentService) Get(ctx context.Context, key string) (*entity.SiteContent, error) {
	content, err := srv.contentRepo.Get(ctx, key)
	if err != nil {
		return nil, translateError(err, "failed to get content")
	}

	return content, nil
}

func (srv *contentService) List(ctx context.Context) ([]*entity.SiteContent, error) {
	contents, err := srv.contentRepo.List(ctx)
	if err != nil {
		return nil, translateError(err, "failed to list content")
	}
	if contents == nil {
		contents = []*entity.SiteContent{}
	}

	return contents, nil
}

func (srv *contentService) Upsert(ctx context.Context, key string, input *usecase.ContentInput) (*entity.SiteContent, error) {
	key = strings.TrimSpace(key)
	if key == "" || len(key) > maxContentKeyLength {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("content key must be 1 to 100 characters"))
	}

	content := &entity.SiteContent{
		Key:       key,
		Title:     input.Title,
		Body:      input.Body,
		UpdatedAt: time.Now().UTC(),
	}
	if err := srv.contentRepo.Upsert(ctx, content); err != nil {
		return nil, translateError(err, "failed to save content")
	}

	return content, nil
}

func (srv *contentService) Delete(ctx context.Context, key string) error {
	if err := srv.contentRepo.Delete(ctx, key); err != nil {
		return translateError(err, "failed to delete content")
	}

	return nil
}

type deviceService struct {
	deviceRepo repository.DeviceRepository
}

// NewDeviceService creates a new device service instance
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{deviceRepo: deviceRepo}
}

// RegisterDevice registers a new device or refreshes the token of an existing one
func (s *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, info *usecase.DeviceInfo) (*entity.UserDevice, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if info.FCMToken == "" || info.DeviceID == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("fcmToken and deviceId are required"))
	}
	if !info.Platform.IsValid() {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("platform must be ios, android or web"))
	}

	now := time.Now().UTC()
	device, err := s.deviceRepo.UpsertDevice(ctx, &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    userID,
		FCMToken:  info.FCMToken,
		DeviceID:  info.DeviceID,
		Platform:  info.Platform,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, translateError(err, "failed to register device")
	}

	return device, nil
}
