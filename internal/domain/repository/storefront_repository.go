package repository

import (
	"context"

	"verdeluxe/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
	ErrSubscriberNotFound   = errors.New("newsletter subscriber not found")
	ErrContentNotFound      = errors.New("site content not found")
)

type WishlistRepository interface {
	// ListByUser returns wishlist items of active plants, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.WishlistItem, error)

	// Add is idempotent and returns the existing item when present.
	Add(ctx context.Context, userID, plantID uuid.UUID) (*entity.WishlistItem, error)

	Remove(ctx context.Context, userID, plantID uuid.UUID) error
}

type NewsletterRepository interface {
	// Subscribe inserts the email or re-activates an existing subscriber.
	Subscribe(ctx context.Context, email string) (*entity.NewsletterSubscriber, error)
	List(ctx context.Context, page Page) ([]*entity.NewsletterSubscriber, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ContentRepository interface {
	Get(ctx context.Context, key string) (*entity.SiteContent, error)
	List(ctx context.Context) ([]*entity.SiteContent, error)
	Upsert(ctx context.Context, content *entity.SiteContent) error
	Delete(ctx context.Context, key string) error
}
