package catalog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/saral-app/saral/internal/shared"
)

// Store is the slice of application state the catalog endpoints need.
type Store interface {
	Products() []Product
	AddProduct(ctx context.Context, p Product) (Product, error)
	UpdateProduct(ctx context.Context, p Product) (Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// Handler wires HTTP endpoints for product management.
type Handler struct {
	logger    *slog.Logger
	store     Store
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, store Store) *Handler {
	return &Handler{logger: logger, store: store, validator: validator.New()}
}

// MountRoutes registers product routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/products", h.List)
	r.Post("/products", h.Create)
	r.Put("/products/{id}", h.Update)
	r.Delete("/products/{id}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	shared.JSON(w, http.StatusOK, h.store.Products())
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.JSONError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.JSONError(w, http.StatusUnprocessableEntity, "validation_failed")
		return
	}
	product, err := h.store.AddProduct(r.Context(), Product{
		Name:         req.Name,
		Category:     req.Category,
		Price:        req.Price,
		CostPrice:    req.CostPrice,
		GSTRate:      req.GSTRate,
		Stock:        req.Stock,
		ReorderPoint: req.ReorderPoint,
	})
	if err != nil {
		h.logger.Error("add product", slog.Any("error", err))
		shared.JSONError(w, http.StatusInternalServerError, "add_product_failed")
		return
	}
	shared.JSON(w, http.StatusCreated, product)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req UpdateProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.JSONError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.JSONError(w, http.StatusUnprocessableEntity, "validation_failed")
		return
	}
	product, err := h.store.UpdateProduct(r.Context(), Product{
		ID:           id,
		Name:         req.Name,
		Category:     req.Category,
		Price:        req.Price,
		CostPrice:    req.CostPrice,
		GSTRate:      req.GSTRate,
		Stock:        req.Stock,
		ReorderPoint: req.ReorderPoint,
	})
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.JSONError(w, http.StatusNotFound, "product_not_found")
			return
		}
		h.logger.Error("update product", slog.Any("error", err))
		shared.JSONError(w, http.StatusInternalServerError, "update_product_failed")
		return
	}
	shared.JSON(w, http.StatusOK, product)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			shared.JSONError(w, http.StatusNotFound, "product_not_found")
			return
		}
		h.logger.Error("delete product", slog.Any("error", err))
		shared.JSONError(w, http.StatusInternalServerError, "delete_product_failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
