package billing

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/saral-app/saral/internal/shared"
)

// Store is the slice of application state the bill endpoints need.
type Store interface {
	Bills() []Bill
	Bill(id string) (Bill, bool)
	CreateBill(ctx context.Context, req CreateBillRequest) (Bill, error)
}

// Handler wires HTTP endpoints for bills.
type Handler struct {
	logger    *slog.Logger
	store     Store
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, store Store) *Handler {
	return &Handler{logger: logger, store: store, validator: validator.New()}
}

// MountRoutes registers bill routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/bills", h.List)
	r.Post("/bills", h.Create)
	r.Get("/bills/{id}", h.Show)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	shared.JSON(w, http.StatusOK, h.store.Bills())
}

type billDetail struct {
	Bill
	TotalFormatted      string  `json:"total_formatted"`
	GrandTotal          float64 `json:"grand_total"`
	GrandTotalFormatted string  `json:"grand_total_formatted"`
}

func detail(b Bill) billDetail {
	return billDetail{
		Bill:                b,
		TotalFormatted:      shared.FormatINR(b.Total),
		GrandTotal:          b.GrandTotal(),
		GrandTotalFormatted: shared.FormatINR(b.GrandTotal()),
	}
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	b, ok := h.store.Bill(chi.URLParam(r, "id"))
	if !ok {
		shared.JSONError(w, http.StatusNotFound, "bill_not_found")
		return
	}
	shared.JSON(w, http.StatusOK, detail(b))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBillRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.JSONError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.JSONError(w, http.StatusUnprocessableEntity, "validation_failed")
		return
	}
	b, err := h.store.CreateBill(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, shared.ErrInsufficientStock):
			shared.JSONError(w, http.StatusConflict, "insufficient_stock")
		case errors.Is(err, shared.ErrUnknownProduct):
			shared.JSONError(w, http.StatusUnprocessableEntity, "unknown_product")
		default:
			h.logger.Error("create bill", slog.Any("error", err))
			shared.JSONError(w, http.StatusInternalServerError, "create_bill_failed")
		}
		return
	}
	shared.JSON(w, http.StatusCreated, detail(b))
}
