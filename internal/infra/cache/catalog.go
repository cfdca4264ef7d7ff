package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"levelup-store/internal/domain/catalog"
	"levelup-store/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const catalogKey = "catalog:products"

// RedisCatalogCache holds the full product listing. The TTL is short; cache
// writers also invalidate explicitly on every catalog mutation.
type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCatalogCache(client *redis.Client) *RedisCatalogCache {
	return &RedisCatalogCache{
		client: client,
		ttl:    time.Minute,
	}
}

func (r *RedisCatalogCache) Get(ctx context.Context) ([]catalog.Summary, error) {
	data, err := r.client.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, shared.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []catalog.Summary
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal catalog failed: %w", err)
	}
	return items, nil
}

func (r *RedisCatalogCache) Set(ctx context.Context, items []catalog.Summary) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal catalog failed: %w", err)
	}
	if err := r.client.Set(ctx, catalogKey, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisCatalogCache) Invalidate(ctx context.Context) error {
	if err := r.client.Del(ctx, catalogKey).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}
