package service

import (
	"context"

	"verdeluxe/internal/domain/entity"
)

// CatalogLoader loads a catalog listing from the store. complete is false
// when part of the listing was degraded; such listings are served but never
// cached.
type CatalogLoader func(ctx context.Context) (plants []*entity.CatalogPlant, complete bool, err error)

// CatalogCache caches catalog listings. Implementations treat backend
// failures as misses.
type CatalogCache interface {
	// GetOrLoad returns the cached listing for filter or calls load and
	// stores its result.
	GetOrLoad(ctx context.Context, filter entity.PlantFilter, load CatalogLoader) ([]*entity.CatalogPlant, error)

	// Invalidate drops every cached listing. Loads already in flight when
	// Invalidate runs are not cached.
	Invalidate(ctx context.Context) error
}
