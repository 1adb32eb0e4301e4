package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/fjod/go_cart/sneaker-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 15 * time.Minute
	maxJitter  = 5 * time.Minute
	keyPrefix  = "cart:"
)

// RedisCache stores carts as JSON under "cart:<id>". Entries expire after the
// base TTL plus up to five minutes of jitter so a burst of fills does not
// expire at once.
type RedisCache struct {
	client  redis.UniversalClient
	baseTTL time.Duration
}

func NewRedisCache(client redis.UniversalClient, baseTTL time.Duration) *RedisCache {
	if baseTTL <= 0 {
		baseTTL = DefaultTTL
	}
	return &RedisCache{client: client, baseTTL: baseTTL}
}

func (r *RedisCache) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, cacheKey(cartID)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, ErrCacheMiss
	case err != nil:
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart %s failed: %w", cartID, err)
	}
	return &cart, nil
}

func (r *RedisCache) Set(ctx context.Context, cartID string, cart *domain.Cart) error {
	if cart == nil {
		return fmt.Errorf("refusing to cache nil cart %s", cartID)
	}
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart %s failed: %w", cartID, err)
	}
	if err := r.client.Set(ctx, cacheKey(cartID), payload, r.ttl()).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisCache) ttl() time.Duration {
	return r.baseTTL + time.Duration(rand.Int63n(int64(maxJitter)))
}

func cacheKey(cartID string) string {
	return keyPrefix + cartID
}
