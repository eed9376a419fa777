package store

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/saral-app/saral/internal/shared"
)

// PaymentSettingsRequest carries a payee configuration update.
type PaymentSettingsRequest struct {
	PayeeName      string `json:"payee_name" validate:"required,max=120"`
	Identifier     string `json:"identifier" validate:"required,max=80"`
	IdentifierType string `json:"identifier_type" validate:"required,oneof=upi mobile"`
}

// UpdateSettingsRequest updates either or both settings fields.
type UpdateSettingsRequest struct {
	BillTheme string                  `json:"bill_theme,omitempty" validate:"omitempty,oneof=minimal modern"`
	Payment   *PaymentSettingsRequest `json:"payment,omitempty"`
}

// SettingsHandler wires HTTP endpoints for settings.
type SettingsHandler struct {
	logger    *slog.Logger
	store     *Store
	validator *validator.Validate
}

// NewSettingsHandler constructs a SettingsHandler instance.
func NewSettingsHandler(logger *slog.Logger, store *Store) *SettingsHandler {
	return &SettingsHandler{logger: logger, store: store, validator: validator.New()}
}

// MountRoutes registers settings routes on the provided router.
func (h *SettingsHandler) MountRoutes(r chi.Router) {
	r.Get("/settings", h.Show)
	r.Put("/settings", h.Update)
}

func (h *SettingsHandler) Show(w http.ResponseWriter, r *http.Request) {
	shared.JSON(w, http.StatusOK, h.store.Settings())
}

func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.JSONError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.JSONError(w, http.StatusUnprocessableEntity, "validation_failed")
		return
	}
	if req.Payment != nil {
		if err := h.validator.Struct(req.Payment); err != nil {
			shared.JSONError(w, http.StatusUnprocessableEntity, "validation_failed")
			return
		}
		if err := h.store.UpdatePaymentSettings(r.Context(), PaymentSettings{
			PayeeName:      req.Payment.PayeeName,
			Identifier:     req.Payment.Identifier,
			IdentifierType: req.Payment.IdentifierType,
		}); err != nil {
			h.logger.Error("update payment settings", slog.Any("error", err))
			shared.JSONError(w, http.StatusInternalServerError, "internal_error")
			return
		}
	}
	if req.BillTheme != "" {
		if err := h.store.SetBillTheme(r.Context(), req.BillTheme); err != nil {
			h.logger.Error("set bill theme", slog.Any("error", err))
			shared.JSONError(w, http.StatusInternalServerError, "internal_error")
			return
		}
	}
	shared.JSON(w, http.StatusOK, h.store.Settings())
}
