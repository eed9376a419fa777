package inventory

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saral-app/saral/internal/shared"
)

// AlertReader exposes the current low-stock alert set.
type AlertReader interface {
	StockAlerts() []StockAlert
}

// Handler serves the stock alert view.
type Handler struct {
	alerts AlertReader
}

// NewHandler constructs a Handler instance.
func NewHandler(alerts AlertReader) *Handler {
	return &Handler{alerts: alerts}
}

// MountRoutes registers inventory routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/products/alerts", h.Alerts)
}

func (h *Handler) Alerts(w http.ResponseWriter, r *http.Request) {
	shared.JSON(w, http.StatusOK, h.alerts.StockAlerts())
}
