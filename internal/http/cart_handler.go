package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fjod/go_cart/sneaker-service/internal/domain"
	"github.com/fjod/go_cart/sneaker-service/internal/service"
	"github.com/go-chi/chi/v5"
)

type CartService interface {
	AddToCart(ctx context.Context, in service.AddToCartInput) (service.AddToCartResult, error)
	GetCart(ctx context.Context, cartID string) (*domain.Cart, error)
}

type CartHandler struct {
	carts   CartService
	timeout time.Duration
	log     *slog.Logger
}

func NewCartHandler(carts CartService, timeout time.Duration, log *slog.Logger) *CartHandler {
	return &CartHandler{
		carts:   carts,
		timeout: timeout,
		log:     log,
	}
}

// AddItemRequestDTO is the add-to-cart payload. Pointers tell an omitted field
// apart from an explicit zero.
type AddItemRequestDTO struct {
	ProductID *string `json:"product_id" validate:"required"`
	Quantity  *int    `json:"quantity" validate:"omitempty,gte=1"`
	Size      *int    `json:"size" validate:"required,gte=1"`
}

var (
	errInvalidJSON  = errors.New("invalid JSON body")
	errNullQuantity = errors.New("quantity must be an integer, not null")
)

// decodeAddItem reads exactly one JSON object from body. An explicit null
// quantity is rejected; only an absent one falls back to the default.
func decodeAddItem(body io.Reader) (AddItemRequestDTO, error) {
	var req AddItemRequestDTO

	dec := json.NewDecoder(body)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return req, errInvalidJSON
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return req, errInvalidJSON
	}

	var fields struct {
		Quantity json.RawMessage `json:"quantity"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return req, errInvalidJSON
	}
	if bytes.Equal(fields.Quantity, []byte("null")) {
		return req, errNullQuantity
	}

	if err := json.Unmarshal(raw, &req); err != nil {
		return req, errInvalidJSON
	}
	return req, nil
}

type AddItemResponse struct {
	CartID string      `json:"cart_id"`
	Cart   domain.Cart `json:"cart"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	// Parse request body
	req, err := decodeAddItem(r.Body)
	if err != nil {
		respondError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := domain.Validate(req); err != nil {
		respondServiceError(w, r, h.log, err)
		return
	}

	in := service.AddToCartInput{
		ProductID: *req.ProductID,
		Size:      *req.Size,
	}
	if req.Quantity != nil {
		in.Quantity = *req.Quantity
	}

	res, err := h.carts.AddToCart(ctx, in)
	if err != nil {
		respondServiceError(w, r, h.log, err)
		return
	}

	respondJSON(w, r, http.StatusOK, AddItemResponse{CartID: res.CartID, Cart: res.Cart})
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	cartID := chi.URLParam(r, "cart_id")

	cart, err := h.carts.GetCart(ctx, cartID)
	if err != nil {
		respondServiceError(w, r, h.log, err)
		return
	}

	respondJSON(w, r, http.StatusOK, cart)
}
