// Package cache implements the Redis read-through cache for catalog listings.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"verdeluxe/config"
	"verdeluxe/internal/domain/entity"
	"verdeluxe/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const (
	keyPrefix      = "catalog:plants:"
	generationKey  = "catalog:generation"
	defaultBaseTTL = 5 * time.Minute
	maxJitter      = time.Minute
	scanBatch      = 100
)

type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCatalogCache returns a Redis backed cache, or a pass-through cache when
// redis.addr is empty.
func NewCatalogCache(params Params) service.CatalogCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, catalog cache disabled")

		return &passThroughCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// An unreachable Redis only degrades caching.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, catalog reads will hit Postgres",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)
			}

			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Redis client")

			return errors.WithStack(client.Close())
		},
	})

	return NewRedisCatalogCache(client, cfg.TTL, params.Logger)
}

type redisCatalogCache struct {
	client  *redis.Client
	baseTTL time.Duration
	logger  *slog.Logger
	group   singleflight.Group
}

func NewRedisCatalogCache(client *redis.Client, baseTTL time.Duration, logger *slog.Logger) service.CatalogCache {
	if baseTTL <= 0 {
		baseTTL = defaultBaseTTL
	}

	return &redisCatalogCache{
		client:  client,
		baseTTL: baseTTL,
		logger:  logger,
	}
}

func (c *redisCatalogCache) GetOrLoad(
	ctx context.Context,
	filter entity.PlantFilter,
	load service.CatalogLoader,
) ([]*entity.CatalogPlant, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "Catalog cache generation read failed", slog.Any("error", err))
		plants, _, err := load(ctx)

		return plants, err
	}
	key := cacheKey(gen, filter)

	// The shared load outlives any single caller; each caller waits on its own ctx.
	sharedCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		plants, err := c.get(sharedCtx, key)
		if err == nil {
			return plants, nil
		}
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(sharedCtx, "Catalog cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		plants, complete, err := load(sharedCtx)
		if err != nil {
			return nil, err
		}
		if !complete {
			return plants, nil
		}

		// Invalidate ran while loading; the listing may predate the write.
		if current, err := c.generation(sharedCtx); err != nil || current != gen {
			return plants, nil
		}

		if err := c.set(sharedCtx, key, plants); err != nil {
			c.logger.WarnContext(sharedCtx, "Catalog cache write failed", slog.String("key", key), slog.Any("error", err))
		}

		return plants, nil
	})

	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}

		return res.Val.([]*entity.CatalogPlant), nil
	}
}

// Invalidate bumps the cache generation so no reader sees listings loaded
// before it, then removes the old entries.
func (c *redisCatalogCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		return errors.Wrap(err, "bump catalog generation")
	}

	iter := c.client.Scan(ctx, 0, keyPrefix+"*", scanBatch).Iterator()

	keys := make([]string, 0, scanBatch)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errors.Wrap(err, "scan catalog keys")
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errors.Wrap(err, "delete catalog keys")
	}

	return nil
}

func (c *redisCatalogCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "read catalog generation")
	}

	return gen, nil
}

func (c *redisCatalogCache) get(ctx context.Context, key string) ([]*entity.CatalogPlant, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var plants []*entity.CatalogPlant
	if err := json.Unmarshal(data, &plants); err != nil {
		return nil, errors.Wrap(err, "unmarshal catalog")
	}

	return plants, nil
}

func (c *redisCatalogCache) set(ctx context.Context, key string, plants []*entity.CatalogPlant) error {
	data, err := json.Marshal(plants)
	if err != nil {
		return errors.Wrap(err, "marshal catalog")
	}

	ttl := c.baseTTL + rand.N(maxJitter)

	return errors.WithStack(c.client.Set(ctx, key, data, ttl).Err())
}

func cacheKey(gen int64, filter entity.PlantFilter) string {
	category := "*"
	if filter.CategoryID != nil {
		category = filter.CategoryID.String()
	}
	featured := "*"
	if filter.Featured != nil {
		featured = strconv.FormatBool(*filter.Featured)
	}

	return fmt.Sprintf("%sgen=%d:category=%s:featured=%s:inactive=%t", keyPrefix, gen, category, featured, filter.IncludeInactive)
}

type passThroughCache struct{}

func (passThroughCache) GetOrLoad(
	ctx context.Context,
	_ entity.PlantFilter,
	load service.CatalogLoader,
) ([]*entity.CatalogPlant, error) {
	plants, _, err := load(ctx)

	return plants, err
}

func (passThroughCache) Invalidate(context.Context) error {
	return nil
}
