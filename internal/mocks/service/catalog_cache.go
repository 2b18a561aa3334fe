package service

import (
	"context"

	"verdeluxe/internal/domain/entity"
	"verdeluxe/internal/domain/service"
)

// PassThroughCatalogCache always calls load and counts invalidations and
// loads that reported a degraded listing.
type PassThroughCatalogCache struct {
	Loads         int
	Incomplete    int
	Invalidations int
}

func (c *PassThroughCatalogCache) GetOrLoad(
	ctx context.Context,
	_ entity.PlantFilter,
	load service.CatalogLoader,
) ([]*entity.CatalogPlant, error) {
	c.Loads++

	plants, complete, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if !complete {
		c.Incomplete++
	}

	return plants, nil
}

func (c *PassThroughCatalogCache) Invalidate(context.Context) error {
	c.Invalidations++

	return nil
}
