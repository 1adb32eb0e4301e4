package repository

import (
	"context"

	"github.com/fjod/go_cart/sneaker-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	SneakerCollection = "sneaker"
	CartCollection    = "cart"
)

// Collections lists the collections this service owns, in display order.
func Collections() []string {
	return []string{SneakerCollection, CartCollection}
}

// SneakerRepository defines the catalog data operations.
// Consumers define this interface, not the MongoDB implementation
type SneakerRepository interface {
	Insert(ctx context.Context, s domain.Sneaker) (string, error)
	List(ctx context.Context) ([]domain.Sneaker, error)
	GetByID(ctx context.Context, id string) (*domain.Sneaker, error)
	Count(ctx context.Context) (int64, error)
}

// CartRepository defines the cart data operations. Carts are write-once.
type CartRepository interface {
	Insert(ctx context.Context, c domain.Cart) (string, error)
	GetByID(ctx context.Context, id string) (*domain.Cart, error)
}

type sneakerRepository struct {
	sneakers collection[domain.Sneaker]
}

// NewSneakerRepository returns a repository over the sneaker collection.
// A nil db yields a repository whose calls fail with ErrStoreUnavailable.
func NewSneakerRepository(db *mongo.Database) SneakerRepository {
	return &sneakerRepository{sneakers: newCollection[domain.Sneaker](db, SneakerCollection)}
}

func (r *sneakerRepository) Insert(ctx context.Context, s domain.Sneaker) (string, error) {
	s.ID = primitive.NilObjectID
	return r.sneakers.insert(ctx, s)
}

func (r *sneakerRepository) List(ctx context.Context) ([]domain.Sneaker, error) {
	return r.sneakers.all(ctx)
}

func (r *sneakerRepository) GetByID(ctx context.Context, id string) (*domain.Sneaker, error) {
	return r.sneakers.byID(ctx, id)
}

func (r *sneakerRepository) Count(ctx context.Context) (int64, error) {
	return r.sneakers.count(ctx)
}

type cartRepository struct {
	carts collection[domain.Cart]
}

// NewCartRepository returns a repository over the cart collection.
// A nil db yields a repository whose calls fail with ErrStoreUnavailable.
func NewCartRepository(db *mongo.Database) CartRepository {
	return &cartRepository{carts: newCollection[domain.Cart](db, CartCollection)}
}

func (r *cartRepository) Insert(ctx context.Context, c domain.Cart) (string, error) {
	c.ID = primitive.NilObjectID
	return r.carts.insert(ctx, c)
}

func (r *cartRepository) GetByID(ctx context.Context, id string) (*domain.Cart, error) {
	return r.carts.byID(ctx, id)
}
