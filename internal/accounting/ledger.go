// Package accounting projects bills into simplified double-entry journal
// rows for display. The projection is recomputed on demand and never
// persisted; the same bill list always yields the same entries.
package accounting

import (
	"strings"
	"time"

	"github.com/saral-app/saral/internal/billing"
)

const (
	AccountSalesRevenue       = "Sales Revenue"
	AccountAccountsReceivable = "Accounts Receivable"
)

// Entry is one journal row.
type Entry struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Account     string    `json:"account"`
	Debit       float64   `json:"debit"`
	Credit      float64   `json:"credit"`
}

// Project emits exactly two entries per bill, in bill order: a Sales
// Revenue credit and an Accounts Receivable debit, both for the bill total.
func Project(bills []billing.Bill) []Entry {
	entries := make([]Entry, 0, 2*len(bills))
	for _, b := range bills {
		description := "Sale - " + b.BillNumber
		entries = append(entries,
			Entry{
				Date:        b.Date,
				Description: description,
				Account:     AccountSalesRevenue,
				Credit:      b.Total,
			},
			Entry{
				Date:        b.Date,
				Description: description,
				Account:     AccountAccountsReceivable,
				Debit:       b.Total,
			},
		)
	}
	return entries
}

// Filter narrows a projected ledger for display.
type Filter struct {
	Query   string
	Account string
}

// Apply returns the entries matching the filter. An empty filter matches
// everything.
func (f Filter) Apply(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	q := strings.ToLower(f.Query)
	for _, e := range entries {
		if f.Account != "" && !strings.Contains(e.Account, f.Account) {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(e.Description), q) &&
			!strings.Contains(strings.ToLower(e.Account), q) {
			continue
		}
		out = append(out, e)
	}
	return out
}
