package accounting

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/saral-app/saral/internal/billing"
	"github.com/saral-app/saral/internal/shared"
)

// BillReader supplies the bill list the ledger is projected from.
type BillReader interface {
	Bills() []billing.Bill
}

// Handler serves the ledger view.
type Handler struct {
	bills BillReader
}

// NewHandler constructs a Handler instance.
func NewHandler(bills BillReader) *Handler {
	return &Handler{bills: bills}
}

// MountRoutes registers accounting routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/ledger", h.Ledger)
}

type ledgerRow struct {
	Entry
	DebitFormatted  string `json:"debit_formatted"`
	CreditFormatted string `json:"credit_formatted"`
}

func (h *Handler) Ledger(w http.ResponseWriter, r *http.Request) {
	filter := Filter{
		Query:   r.URL.Query().Get("q"),
		Account: r.URL.Query().Get("account"),
	}
	entries := filter.Apply(Project(h.bills.Bills()))
	rows := make([]ledgerRow, len(entries))
	for i, e := range entries {
		rows[i] = ledgerRow{
			Entry:           e,
			DebitFormatted:  shared.FormatINR(e.Debit),
			CreditFormatted: shared.FormatINR(e.Credit),
		}
	}
	shared.JSON(w, http.StatusOK, rows)
}
