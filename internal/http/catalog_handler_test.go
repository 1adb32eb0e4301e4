package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fjod/go_cart/sneaker-service/internal/domain"
	"github.com/fjod/go_cart/sneaker-service/internal/repository"
	"github.com/fjod/go_cart/sneaker-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRoot(t *testing.T) {
	handler := NewCatalogHandler(CatalogMock{}, 5*time.Second, discardLogger())

	recorder := httptest.NewRecorder()
	handler.Root(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"message":"Sneaker Store API running"}`, recorder.Body.String())
}

func TestSchema(t *testing.T) {
	handler := NewCatalogHandler(CatalogMock{}, 5*time.Second, discardLogger())

	recorder := httptest.NewRecorder()
	handler.Schema(recorder, httptest.NewRequest(http.MethodGet, "/schema", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"collections":["sneaker","cart"]}`, recorder.Body.String())
}

func TestSeed_Inserted(t *testing.T) {
	ids := []string{"a", "b", "c", "d", "e"}
	handler := NewCatalogHandler(CatalogMock{seed: service.SeedResult{Inserted: 5, IDs: ids}}, 5*time.Second, discardLogger())

	recorder := httptest.NewRecorder()
	handler.Seed(recorder, httptest.NewRequest(http.MethodPost, "/seed", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"inserted":5,"ids":["a","b","c","d","e"]}`, recorder.Body.String())
}

func TestSeed_AlreadySeeded(t *testing.T) {
	handler := NewCatalogHandler(CatalogMock{seed: service.SeedResult{Message: "Already seeded"}}, 5*time.Second, discardLogger())

	recorder := httptest.NewRecorder()
	handler.Seed(recorder, httptest.NewRequest(http.MethodPost, "/seed", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"inserted":0,"message":"Already seeded"}`, recorder.Body.String())
}

func TestSeed_StoreUnavailable(t *testing.T) {
	handler := NewCatalogHandler(CatalogMock{err: repository.ErrStoreUnavailable}, 5*time.Second, discardLogger())

	recorder := httptest.NewRecorder()
	handler.Seed(recorder, httptest.NewRequest(http.MethodPost, "/seed", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"detail":"Database not configured"}`, recorder.Body.String())
}

func TestListProducts(t *testing.T) {
	colorway := "Bred"
	products := []domain.Sneaker{{
		Name:     "Air Jordan 1 Retro High",
		Brand:    "Nike",
		Price:    180.0,
		Image:    "https://images.example.com/aj1.jpg",
		Colorway: &colorway,
		Sizes:    domain.DefaultSizes(),
		InStock:  true,
		Rating:   4.8,
		ID:       primitive.NewObjectID(),
	}}
	handler := NewCatalogHandler(CatalogMock{products: products}, 5*time.Second, discardLogger())

	recorder := httptest.NewRecorder()
	handler.ListProducts(recorder, httptest.NewRequest(http.MethodGet, "/products", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response []map[string]any
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	require.Len(t, response, 1)
	assert.Equal(t, products[0].ID.Hex(), response[0]["id"])
	assert.Equal(t, "Bred", response[0]["colorway"])
	assert.Nil(t, response[0]["description"])
	assert.Equal(t, true, response[0]["in_stock"])
	assert.NotContains(t, response[0], "_id")
}

func TestListProducts_EmptyIsArray(t *testing.T) {
	handler := NewCatalogHandler(CatalogMock{}, 5*time.Second, discardLogger())

	recorder := httptest.NewRecorder()
	handler.ListProducts(recorder, httptest.NewRequest(http.MethodGet, "/products", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())
}

func TestListProducts_StoreUnavailable(t *testing.T) {
	handler := NewCatalogHandler(CatalogMock{err: repository.ErrStoreUnavailable}, 5*time.Second, discardLogger())

	recorder := httptest.NewRecorder()
	handler.ListProducts(recorder, httptest.NewRequest(http.MethodGet, "/products", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"detail":"Database not configured"}`, recorder.Body.String())
}
