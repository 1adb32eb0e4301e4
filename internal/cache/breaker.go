package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/fjod/go_cart/sneaker-service/internal/domain"
	"github.com/sony/gobreaker/v2"
)

// BreakerCache stops calling the wrapped cache after repeated failures so an
// unhealthy Redis does not add latency to every cart read.
type BreakerCache struct {
	next CartCache
	cb   *gobreaker.CircuitBreaker[*domain.Cart]
}

type BreakerSettings struct {
	Name             string
	ConsecutiveFails uint32
	OpenTimeout      time.Duration
}

func NewBreakerCache(next CartCache, st BreakerSettings, log *slog.Logger) *BreakerCache {
	if st.Name == "" {
		st.Name = "cart-cache"
	}
	if st.ConsecutiveFails == 0 {
		st.ConsecutiveFails = 5
	}
	if st.OpenTimeout == 0 {
		st.OpenTimeout = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker[*domain.Cart](gobreaker.Settings{
		Name:        st.Name,
		MaxRequests: 1,
		Timeout:     st.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= st.ConsecutiveFails
		},
		// a miss is a healthy answer
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrCacheMiss)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &BreakerCache{next: next, cb: cb}
}

func (b *BreakerCache) Get(ctx context.Context, cartID string) (*domain.Cart, error) {
	return b.cb.Execute(func() (*domain.Cart, error) {
		return b.next.Get(ctx, cartID)
	})
}

func (b *BreakerCache) Set(ctx context.Context, cartID string, cart *domain.Cart) error {
	_, err := b.cb.Execute(func() (*domain.Cart, error) {
		return nil, b.next.Set(ctx, cartID, cart)
	})
	return err
}

// State reports the breaker state, mainly for tests and health output.
func (b *BreakerCache) State() gobreaker.State {
	return b.cb.State()
}
