package service

import (
	"context"

	"verdeluxe/internal/domain/entity"
)

// LegacySnapshot is the storefront data read from the legacy document
// store, already mapped onto entities with stable ids.
type LegacySnapshot struct {
	Categories    []*entity.Category
	Plants        []*entity.Plant
	Users         []*entity.User
	Orders        []*entity.Order
	WishlistItems []*entity.WishlistItem
	Subscribers   []string
	Content       []*entity.SiteContent
}

// LegacySource reads the legacy collections for the one-shot import.
type LegacySource interface {
	Snapshot(ctx context.Context) (*LegacySnapshot, error)
	Close() error
}
