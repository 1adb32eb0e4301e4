package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fjod/go_cart/sneaker-service/internal/domain"
	"github.com/fjod/go_cart/sneaker-service/internal/repository"
	"github.com/fjod/go_cart/sneaker-service/internal/service"
)

type CatalogService interface {
	Seed(ctx context.Context) (service.SeedResult, error)
	ListProducts(ctx context.Context) ([]domain.Sneaker, error)
}

type CatalogHandler struct {
	catalog CatalogService
	timeout time.Duration
	log     *slog.Logger
}

func NewCatalogHandler(catalog CatalogService, timeout time.Duration, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		timeout: timeout,
		log:     log,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SchemaResponse struct {
	Collections []string `json:"collections"`
}

type SeedResponse struct {
	Inserted int      `json:"inserted"`
	IDs      []string `json:"ids,omitempty"`
	Message  string   `json:"message,omitempty"`
}

func (h *CatalogHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, MessageResponse{Message: "Sneaker Store API running"})
}

func (h *CatalogHandler) Schema(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, SchemaResponse{Collections: repository.Collections()})
}

func (h *CatalogHandler) Seed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	res, err := h.catalog.Seed(ctx)
	if err != nil {
		respondServiceError(w, r, h.log, err)
		return
	}

	respondJSON(w, r, http.StatusOK, SeedResponse{
		Inserted: res.Inserted,
		IDs:      res.IDs,
		Message:  res.Message,
	})
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	products, err := h.catalog.ListProducts(ctx)
	if err != nil {
		respondServiceError(w, r, h.log, err)
		return
	}
	if products == nil {
		products = []domain.Sneaker{}
	}

	respondJSON(w, r, http.StatusOK, products)
}
