package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fjod/go_cart/sneaker-service/internal/cache"
	"github.com/fjod/go_cart/sneaker-service/internal/domain"
	"github.com/fjod/go_cart/sneaker-service/internal/repository"
	"golang.org/x/sync/singleflight"
)

const cacheWriteTimeout = time.Second

type AddToCartInput struct {
	ProductID string
	Quantity  int // 0 means the default quantity
	Size      int
}

type AddToCartResult struct {
	CartID string
	Cart   domain.Cart
}

type CartService struct {
	sneakers repository.SneakerRepository
	carts    repository.CartRepository
	cache    cache.CartCache
	sfg      singleflight.Group // Prevents cache stampede
	log      *slog.Logger
}

func NewCartService(
	sneakers repository.SneakerRepository,
	carts repository.CartRepository,
	cache cache.CartCache,
	log *slog.Logger,
) *CartService {
	return &CartService{
		sneakers: sneakers,
		carts:    carts,
		cache:    cache,
		log:      log,
	}
}

// AddToCart creates a new single-item cart for the given product. Every call
// produces a separate cart; earlier carts are never merged or touched.
func (s *CartService) AddToCart(ctx context.Context, in AddToCartInput) (AddToCartResult, error) {
	quantity := in.Quantity
	if quantity == 0 {
		quantity = domain.DefaultQuantity
	}

	product, err := s.sneakers.GetByID(ctx, in.ProductID)
	if err != nil {
		if isMissing(err) {
			return AddToCartResult{}, ErrProductNotFound
		}
		return AddToCartResult{}, err
	}

	item, err := domain.NewCartItem(*product, quantity, in.Size)
	if err != nil {
		return AddToCartResult{}, err
	}

	cart, err := domain.NewCart(item)
	if err != nil {
		return AddToCartResult{}, err
	}

	cartID, err := s.carts.Insert(ctx, cart)
	if err != nil {
		s.log.ErrorContext(ctx, "repo insert cart error", "error", err)
		return AddToCartResult{}, err
	}

	s.log.InfoContext(ctx, "cart created", "cart_id", cartID, "product_id", item.ProductID, "total", cart.Total)
	return AddToCartResult{CartID: cartID, Cart: cart}, nil
}

func (s *CartService) GetCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(cartID, func() (interface{}, error) {
		cart, err := s.cache.Get(ctx, cartID)
		if err == nil {
			return cart, nil // cart is in cache
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.WarnContext(ctx, "cache get error", "cart_id", cartID, "error", err) // log cache error but continue
		}

		cart, err = s.carts.GetByID(ctx, cartID)
		if err != nil {
			if isMissing(err) {
				return nil, ErrCartNotFound
			}
			return nil, err
		}

		s.fillCache(ctx, cartID, cart)
		return cart, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*domain.Cart), nil
}

func (s *CartService) fillCache(ctx context.Context, cartID string, cart *domain.Cart) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cacheWriteTimeout)
	defer cancel()
	if err := s.cache.Set(ctx, cartID, cart); err != nil {
		s.log.WarnContext(ctx, "cache set error", "cart_id", cartID, "error", err)
	}
}

func isMissing(err error) bool {
	return errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID)
}
