package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fjod/go_cart/sneaker-service/internal/domain"
	"github.com/fjod/go_cart/sneaker-service/internal/repository"
	"github.com/fjod/go_cart/sneaker-service/internal/service"
)

type ErrorResponse struct {
	Detail string `json:"detail"`
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		loggerFrom(r.Context()).ErrorContext(r.Context(), "failed to encode response",
			"path", r.URL.Path,
			"request_id", getRequestID(r.Context()),
			"error", err,
		)
	}
}

func respondError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	respondJSON(w, r, status, ErrorResponse{Detail: detail})
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, "Not Found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, "Method Not Allowed")
}

// respondServiceError converts service and store errors to HTTP statuses.
func respondServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var vErr *domain.ValidationError

	switch {
	case errors.Is(err, service.ErrProductNotFound):
		respondError(w, r, http.StatusNotFound, "Product not found")
	case errors.Is(err, service.ErrCartNotFound):
		respondError(w, r, http.StatusNotFound, "Cart not found")
	case errors.Is(err, repository.ErrStoreUnavailable):
		respondError(w, r, http.StatusInternalServerError, "Database not configured")
	case errors.As(err, &vErr):
		respondError(w, r, http.StatusUnprocessableEntity, vErr.Error())
	default:
		log.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", getRequestID(r.Context()),
			"error", err,
		)
		respondError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
