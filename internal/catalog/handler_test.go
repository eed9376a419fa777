package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saral-app/saral/internal/shared"
)

type mockStore struct {
	products []Product
	addErr   error
}

func (m *mockStore) Products() []Product { return m.products }

func (m *mockStore) AddProduct(_ context.Context, p Product) (Product, error) {
	if m.addErr != nil {
		return Product{}, m.addErr
	}
	p.ID = "generated-id"
	m.products = append(m.products, p)
	return p, nil
}

func (m *mockStore) UpdateProduct(_ context.Context, p Product) (Product, error) {
	for i, existing := range m.products {
		if existing.ID == p.ID {
			m.products[i] = p
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("product %s: %w", p.ID, shared.ErrNotFound)
}

func (m *mockStore) DeleteProduct(_ context.Context, id string) error {
	for i, existing := range m.products {
		if existing.ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product %s: %w", id, shared.ErrNotFound)
}

func newTestRouter(store *mockStore) *chi.Mux {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	NewHandler(logger, store).MountRoutes(r)
	return r
}

func TestListProducts(t *testing.T) {
	store := &mockStore{products: []Product{{ID: "p1", Name: "Widget", Price: 100}}}
	router := newTestRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Widget", got[0].Name)
}

func TestCreateProduct(t *testing.T) {
	store := &mockStore{}
	router := newTestRouter(store)

	body := `{"name":"Widget","category":"Hardware","price":100,"cost_price":60,"gst_rate":18,"stock":10,"reorder_point":5}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var got Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "generated-id", got.ID)
	assert.Equal(t, 5, got.ReorderPoint)
	require.Len(t, store.products, 1)
}

func TestCreateProductValidation(t *testing.T) {
	router := newTestRouter(&mockStore{})

	cases := map[string]string{
		"missing name":   `{"category":"Hardware","price":100}`,
		"zero price":     `{"name":"Widget","category":"Hardware","price":0}`,
		"negative stock": `{"name":"Widget","category":"Hardware","price":100,"stock":-1}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(body)))
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

func TestCreateProductMalformedJSON(t *testing.T) {
	router := newTestRouter(&mockStore{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/products", strings.NewReader(`{"name":`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProduct(t *testing.T) {
	store := &mockStore{products: []Product{{ID: "p1", Name: "Widget", Price: 100, Stock: 10}}}
	router := newTestRouter(store)

	// Stock may go negative on update; back-orders are a valid correction.
	body := `{"name":"Widget","category":"Hardware","price":120,"stock":-2}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/products/p1", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 120.0, store.products[0].Price)
	assert.Equal(t, -2, store.products[0].Stock)
}

func TestUpdateProductNotFound(t *testing.T) {
	router := newTestRouter(&mockStore{})

	body := `{"name":"Widget","category":"Hardware","price":100}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/products/ghost", strings.NewReader(body)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	store := &mockStore{products: []Product{{ID: "p1", Name: "Widget"}}}
	router := newTestRouter(store)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/products/p1", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, store.products)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/products/p1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
