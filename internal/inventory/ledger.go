// Package inventory applies confirmed bills against product stock and
// derives low-stock alerts.
package inventory

import (
	"fmt"
	"log/slog"

	"github.com/saral-app/saral/internal/billing"
	"github.com/saral-app/saral/internal/catalog"
	"github.com/saral-app/saral/internal/shared"
)

// StockPolicy names the behaviour when a bill would drive stock negative.
type StockPolicy string

const (
	// StockPolicyAllow lets stock go negative (back-order semantics).
	StockPolicyAllow StockPolicy = "allow"
	// StockPolicyClamp floors stock at zero.
	StockPolicyClamp StockPolicy = "clamp"
	// StockPolicyReject fails the whole bill when any line oversells.
	StockPolicyReject StockPolicy = "reject"
)

// OrphanPolicy names the behaviour for bill lines referencing unknown
// products.
type OrphanPolicy string

const (
	// OrphanPolicyIgnore silently skips the line.
	OrphanPolicyIgnore OrphanPolicy = "ignore"
	// OrphanPolicyWarn skips the line and logs a warning.
	OrphanPolicyWarn OrphanPolicy = "warn"
	// OrphanPolicyReject fails the whole bill.
	OrphanPolicyReject OrphanPolicy = "reject"
)

// Sentinels for the reject policies. Aliases of the shared definitions.
var (
	ErrInsufficientStock = shared.ErrInsufficientStock
	ErrUnknownProduct    = shared.ErrUnknownProduct
)

// StockAlert flags a product at or below its reorder point.
type StockAlert struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Stock        int    `json:"stock"`
	ReorderPoint int    `json:"reorder_point"`
}

// Ledger applies bills to stock under the configured policies.
type Ledger struct {
	stockPolicy  StockPolicy
	orphanPolicy OrphanPolicy
	logger       *slog.Logger
}

// NewLedger constructs a Ledger. A nil logger disables warn logging.
func NewLedger(stock StockPolicy, orphan OrphanPolicy, logger *slog.Logger) *Ledger {
	return &Ledger{stockPolicy: stock, orphanPolicy: orphan, logger: logger}
}

// ApplyBill subtracts each bill line's quantity from the matching product's
// stock and returns the updated product set. The input slice is not
// modified; on error nothing is applied.
func (l *Ledger) ApplyBill(products []catalog.Product, bill billing.Bill) ([]catalog.Product, error) {
	updated := make([]catalog.Product, len(products))
	copy(updated, products)

	index := make(map[string]int, len(updated))
	for i, p := range updated {
		index[p.ID] = i
	}

	for _, item := range bill.Items {
		i, ok := index[item.ProductID]
		if !ok {
			switch l.orphanPolicy {
			case OrphanPolicyReject:
				return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, item.ProductID)
			case OrphanPolicyWarn:
				if l.logger != nil {
					l.logger.Warn("bill line references unknown product",
						slog.String("bill", bill.BillNumber),
						slog.String("product_id", item.ProductID))
				}
			}
			continue
		}
		next := updated[i].Stock - item.Quantity
		if next < 0 {
			switch l.stockPolicy {
			case StockPolicyReject:
				return nil, fmt.Errorf("%w: product %s has %d, bill needs %d",
					ErrInsufficientStock, item.ProductID, updated[i].Stock, item.Quantity)
			case StockPolicyClamp:
				next = 0
			}
		}
		updated[i].Stock = next
	}
	return updated, nil
}

// ComputeAlerts returns the alert set for the given products: exactly those
// with stock at or below the reorder point, in product order. It is a full
// recomputation with no incremental state.
func ComputeAlerts(products []catalog.Product) []StockAlert {
	alerts := make([]StockAlert, 0)
	for _, p := range products {
		if p.Stock <= p.ReorderPoint {
			alerts = append(alerts, StockAlert{
				ProductID:    p.ID,
				Name:         p.Name,
				Stock:        p.Stock,
				ReorderPoint: p.ReorderPoint,
			})
		}
	}
	return alerts
}
