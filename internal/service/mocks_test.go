package service

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/fjod/go_cart/sneaker-service/internal/cache"
	"github.com/fjod/go_cart/sneaker-service/internal/domain"
	"github.com/fjod/go_cart/sneaker-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore mimics a Mongo collection: inserts get a fresh ObjectID and
// lookups return copies.
type memStore[T any] struct {
	m     sync.RWMutex
	order []string
	docs  map[string]T
	err   error
	reads int
}

func newMemStore[T any]() *memStore[T] {
	return &memStore[T]{docs: map[string]T{}}
}

func (s *memStore[T]) insert(doc T) (string, error) {
	s.m.Lock()
	defer s.m.Unlock()
	if s.err != nil {
		return "", s.err
	}
	id := primitive.NewObjectID().Hex()
	s.order = append(s.order, id)
	s.docs[id] = doc
	return id, nil
}

func (s *memStore[T]) get(id string) (T, error) {
	s.m.Lock()
	defer s.m.Unlock()
	s.reads++
	var zero T
	if s.err != nil {
		return zero, s.err
	}
	if !primitive.IsValidObjectID(id) {
		return zero, repository.ErrInvalidID
	}
	doc, ok := s.docs[id]
	if !ok {
		return zero, repository.ErrNotFound
	}
	return doc, nil
}

func (s *memStore[T]) readCount() int {
	s.m.RLock()
	defer s.m.RUnlock()
	return s.reads
}

type mockSneakerRepository struct {
	*memStore[domain.Sneaker]
}

func newMockSneakerRepository() *mockSneakerRepository {
	return &mockSneakerRepository{newMemStore[domain.Sneaker]()}
}

func (r *mockSneakerRepository) Insert(_ context.Context, s domain.Sneaker) (string, error) {
	return r.insert(s)
}

func (r *mockSneakerRepository) List(context.Context) ([]domain.Sneaker, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Sneaker, 0, len(r.order))
	for _, id := range r.order {
		s := r.docs[id]
		s.ID, _ = primitive.ObjectIDFromHex(id)
		out = append(out, s)
	}
	return out, nil
}

func (r *mockSneakerRepository) GetByID(_ context.Context, id string) (*domain.Sneaker, error) {
	s, err := r.get(id)
	if err != nil {
		return nil, err
	}
	s.ID, _ = primitive.ObjectIDFromHex(id)
	return &s, nil
}

func (r *mockSneakerRepository) Count(context.Context) (int64, error) {
	r.m.RLock()
	defer r.m.RUnlock()
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.docs)), nil
}

type mockCartRepository struct {
	*memStore[domain.Cart]
}

func newMockCartRepository() *mockCartRepository {
	return &mockCartRepository{newMemStore[domain.Cart]()}
}

func (r *mockCartRepository) Insert(_ context.Context, c domain.Cart) (string, error) {
	return r.insert(c)
}

func (r *mockCartRepository) GetByID(_ context.Context, id string) (*domain.Cart, error) {
	c, err := r.get(id)
	if err != nil {
		return nil, err
	}
	c.ID, _ = primitive.ObjectIDFromHex(id)
	return &c, nil
}

type mockCache struct {
	m     sync.RWMutex
	carts map[string]*domain.Cart
	err   error
}

func newMockCache() *mockCache {
	return &mockCache{carts: map[string]*domain.Cart{}}
}

func (m *mockCache) Get(_ context.Context, cartID string) (*domain.Cart, error) {
	m.m.RLock()
	defer m.m.RUnlock()
	if m.err != nil {
		return nil, m.err
	}
	cart, ok := m.carts[cartID]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return cart, nil
}

func (m *mockCache) Set(_ context.Context, cartID string, cart *domain.Cart) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	m.carts[cartID] = cart
	return nil
}

func (m *mockCache) getCart(cartID string) *domain.Cart {
	m.m.RLock()
	defer m.m.RUnlock()
	return m.carts[cartID]
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
