package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"levelup-store/internal/domain/cart"
	"levelup-store/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisCartStore keeps the per-user cart ledger in Redis. Carts expire
// after the TTL; an expired cart simply reads back as empty.
type RedisCartStore struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewRedisCartStore(client *redis.Client, baseTTL time.Duration) *RedisCartStore {
	return &RedisCartStore{
		client:  client,
		baseTTL: baseTTL,
	}
}

func (r *RedisCartStore) Get(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	data, err := r.client.Get(ctx, cartKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, shared.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var c cart.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	return &c, nil
}

func (r *RedisCartStore) Save(ctx context.Context, c *cart.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	// jitter spreads expirations so carts saved together don't all expire together
	jitter := time.Duration(rand.Intn(60)) * time.Second
	if err := r.client.Set(ctx, cartKey(c.UserID), data, r.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisCartStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := r.client.Del(ctx, cartKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cartKey(userID uuid.UUID) string {
	return fmt.Sprintf("cart:%s", userID)
}
