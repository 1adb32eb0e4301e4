package http

import (
	"context"
	"io"
	"log/slog"

	"github.com/fjod/go_cart/sneaker-service/internal/domain"
	"github.com/fjod/go_cart/sneaker-service/internal/service"
)

type CatalogMock struct {
	seed     service.SeedResult
	products []domain.Sneaker
	err      error
}

func (c CatalogMock) Seed(context.Context) (service.SeedResult, error) {
	if c.err != nil {
		return service.SeedResult{}, c.err
	}
	return c.seed, nil
}

func (c CatalogMock) ListProducts(context.Context) ([]domain.Sneaker, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.products, nil
}

type CartMock struct {
	result service.AddToCartResult
	cart   *domain.Cart
	err    error
	// last request seen by AddToCart
	got *service.AddToCartInput
}

func (c CartMock) AddToCart(_ context.Context, in service.AddToCartInput) (service.AddToCartResult, error) {
	if c.got != nil {
		*c.got = in
	}
	if c.err != nil {
		return service.AddToCartResult{}, c.err
	}
	return c.result, nil
}

func (c CartMock) GetCart(context.Context, string) (*domain.Cart, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.cart, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
