package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type RouterConfig struct {
	RequestTimeout     time.Duration
	MaxRequestBodySize int64
}

func (c RouterConfig) withDefaults() RouterConfig {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = 30 * time.Second
	}
	if c.MaxRequestBodySize <= 0 {
		c.MaxRequestBodySize = 1 << 20 // 1MB
	}
	return c
}

// NewRouter wires the public API. The returned handler is traced with otelhttp.
func NewRouter(catalog CatalogService, carts CartService, log *slog.Logger, cfg RouterConfig) http.Handler {
	cfg = cfg.withDefaults()
	catalogHandler := NewCatalogHandler(catalog, cfg.RequestTimeout, log)
	cartHandler := NewCartHandler(carts, cfg.RequestTimeout, log)

	r := chi.NewRouter()

	// Global middleware
	r.Use(RequestIDMiddleware)
	r.Use(RequestLogger(log))
	r.Use(Recoverer)
	r.Use(CORS())
	r.Use(middleware.RequestSize(cfg.MaxRequestBodySize))
	r.Use(middleware.Compress(5))

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/", catalogHandler.Root)
	r.Get("/schema", catalogHandler.Schema)
	r.Post("/seed", catalogHandler.Seed)
	r.Get("/products", catalogHandler.ListProducts)

	r.Route("/cart", func(r chi.Router) {
		r.Post("/add", cartHandler.AddItem)
		r.Get("/{cart_id}", cartHandler.GetCart)
	})

	return otelhttp.NewHandler(r, "sneaker-service")
}
