package cache

import (
	"context"
	"errors"

	"github.com/fjod/go_cart/sneaker-service/internal/domain"
)

// CartCache holds serialized carts keyed by cart id. Carts are never modified
// after creation, so an entry stays valid until it expires and is never
// invalidated.
type CartCache interface {
	Get(ctx context.Context, cartID string) (*domain.Cart, error)
	Set(ctx context.Context, cartID string, cart *domain.Cart) error
}

var ErrCacheMiss = errors.New("cache miss")

// NoopCache is used when no Redis is configured. Every Get misses.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) (*domain.Cart, error) {
	return nil, ErrCacheMiss
}

func (NoopCache) Set(context.Context, string, *domain.Cart) error { return nil }
