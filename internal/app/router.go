package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saral-app/saral/internal/accounting"
	"github.com/saral-app/saral/internal/analytics"
	"github.com/saral-app/saral/internal/billing"
	"github.com/saral-app/saral/internal/catalog"
	"github.com/saral-app/saral/internal/inventory"
	"github.com/saral-app/saral/internal/quotation"
	"github.com/saral-app/saral/internal/store"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger            *slog.Logger
	Config            *Config
	CatalogHandler    *catalog.Handler
	InventoryHandler  *inventory.Handler
	BillingHandler    *billing.Handler
	QuotationHandler  *quotation.Handler
	AnalyticsHandler  *analytics.Handler
	AccountingHandler *accounting.Handler
	SettingsHandler   *store.SettingsHandler
}

// NewRouter constructs the chi.Router with default middlewares and all
// domain routes mounted.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	params.CatalogHandler.MountRoutes(r)
	params.InventoryHandler.MountRoutes(r)
	params.BillingHandler.MountRoutes(r)
	params.QuotationHandler.MountRoutes(r)
	params.AnalyticsHandler.MountRoutes(r)
	params.AccountingHandler.MountRoutes(r)
	params.SettingsHandler.MountRoutes(r)

	return r
}
