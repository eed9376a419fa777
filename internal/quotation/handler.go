package quotation

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/saral-app/saral/internal/shared"
)

// Store is the slice of application state the quotation endpoints need.
type Store interface {
	Quotations() []Quotation
	Quotation(id string) (Quotation, bool)
	AddQuotation(ctx context.Context, q Quotation) (Quotation, error)
	UpdateQuotation(ctx context.Context, q Quotation) (Quotation, error)
	TransitionQuotation(ctx context.Context, id string, next Status) (Quotation, error)
	DeleteQuotation(ctx context.Context, id string) error
}

// Handler wires HTTP endpoints for quotations.
type Handler struct {
	logger    *slog.Logger
	store     Store
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, store Store) *Handler {
	return &Handler{logger: logger, store: store, validator: validator.New()}
}

// MountRoutes registers quotation routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/quotations", h.List)
	r.Post("/quotations", h.Create)
	r.Get("/quotations/payment-terms", h.PaymentTermPresets)
	r.Get("/quotations/{id}", h.Show)
	r.Put("/quotations/{id}", h.Update)
	r.Delete("/quotations/{id}", h.Delete)
	r.Post("/quotations/{id}/status", h.Transition)
	r.Get("/quotations/{id}/milestones", h.MilestoneSchedule)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	shared.JSON(w, http.StatusOK, h.store.Quotations())
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	q, ok := h.store.Quotation(chi.URLParam(r, "id"))
	if !ok {
		shared.JSONError(w, http.StatusNotFound, "quotation_not_found")
		return
	}
	shared.JSON(w, http.StatusOK, q)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateQuotationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.JSONError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.JSONError(w, http.StatusUnprocessableEntity, "validation_failed")
		return
	}
	q, err := h.store.AddQuotation(r.Context(), h.fromRequest(req, StatusDraft))
	if err != nil {
		h.respondMutationError(w, "add quotation", err)
		return
	}
	shared.JSON(w, http.StatusCreated, q)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateQuotationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.JSONError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := h.validator.Struct(req); err != nil || !req.Status.Valid() {
		shared.JSONError(w, http.StatusUnprocessableEntity, "validation_failed")
		return
	}
	q := h.fromRequest(req.CreateQuotationRequest, req.Status)
	q.ID = chi.URLParam(r, "id")
	updated, err := h.store.UpdateQuotation(r.Context(), q)
	if err != nil {
		h.respondMutationError(w, "update quotation", err)
		return
	}
	shared.JSON(w, http.StatusOK, updated)
}

func (h *Handler) Transition(w http.ResponseWriter, r *http.Request) {
	var req StatusRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.JSONError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if !req.Status.Valid() {
		shared.JSONError(w, http.StatusUnprocessableEntity, "validation_failed")
		return
	}
	q, err := h.store.TransitionQuotation(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.respondMutationError(w, "transition quotation", err)
		return
	}
	shared.JSON(w, http.StatusOK, q)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteQuotation(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondMutationError(w, "delete quotation", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PaymentTermPresets lists the built-in payment schedules.
func (h *Handler) PaymentTermPresets(w http.ResponseWriter, r *http.Request) {
	shared.JSON(w, http.StatusOK, Presets())
}

// MilestoneSchedule resolves a quotation's terms into concrete amounts.
func (h *Handler) MilestoneSchedule(w http.ResponseWriter, r *http.Request) {
	q, ok := h.store.Quotation(chi.URLParam(r, "id"))
	if !ok {
		shared.JSONError(w, http.StatusNotFound, "quotation_not_found")
		return
	}
	shared.JSON(w, http.StatusOK, Milestones(q.PaymentTerms, q.Total))
}

func (h *Handler) fromRequest(req CreateQuotationRequest, status Status) Quotation {
	items := make([]QuotationItem, len(req.Items))
	for i, it := range req.Items {
		items[i] = QuotationItem{ProductID: it.ProductID, Quantity: it.Quantity, Price: it.Price}
	}
	items = NormalizeItems(items)
	terms := make([]PaymentTerm, len(req.PaymentTerms))
	for i, t := range req.PaymentTerms {
		terms[i] = PaymentTerm{
			ID:          uuid.NewString(),
			Kind:        t.Kind,
			Description: t.Description,
			Percentage:  t.Percentage,
			Conditions:  t.Conditions,
		}
	}
	return Quotation{
		BusinessName:        req.BusinessName,
		BusinessAddress:     req.BusinessAddress,
		BusinessPhone:       req.BusinessPhone,
		VendorName:          req.VendorName,
		VendorEmail:         req.VendorEmail,
		VendorPhone:         req.VendorPhone,
		VendorAddress:       req.VendorAddress,
		Items:               items,
		Total:               SumItems(items),
		DeliveryAddress:     req.DeliveryAddress,
		ExpectedDelivery:    req.ExpectedDelivery,
		PaymentTerms:        terms,
		SpecialInstructions: req.SpecialInstructions,
		Status:              status,
	}
}

func (h *Handler) respondMutationError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		shared.JSONError(w, http.StatusNotFound, "quotation_not_found")
	case errors.Is(err, ErrTermsNotSettled):
		shared.JSONError(w, http.StatusUnprocessableEntity, "payment_terms_not_100")
	case errors.Is(err, ErrInvalidTransition):
		shared.JSONError(w, http.StatusConflict, "invalid_status_transition")
	default:
		h.logger.Error(op, slog.Any("error", err))
		shared.JSONError(w, http.StatusInternalServerError, "internal_error")
	}
}
