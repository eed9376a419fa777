// Package analytics derives dashboard metrics from the current bill and
// product collections. All functions here are pure reads over snapshots;
// empty collections yield identity values, never errors.
package analytics

import (
	"time"

	"github.com/saral-app/saral/internal/billing"
	"github.com/saral-app/saral/internal/catalog"
)

// Summary bundles the headline dashboard figures.
type Summary struct {
	TotalSales        float64 `json:"total_sales"`
	NetProfitMargin   float64 `json:"net_profit_margin"`
	TotalOrders       int     `json:"total_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
}

// TotalSales sums bill totals with no time filter.
func TotalSales(bills []billing.Bill) float64 {
	var sum float64
	for _, b := range bills {
		sum += b.Total
	}
	return sum
}

// TotalSalesInWindow sums bill totals for bills dated in [from, to]
// inclusive.
func TotalSalesInWindow(bills []billing.Bill, from, to time.Time) float64 {
	var sum float64
	for _, b := range bills {
		if b.Date.Before(from) || b.Date.After(to) {
			continue
		}
		sum += b.Total
	}
	return sum
}

// NetProfitMargin returns (sales - cost) / sales * 100, where cost is the
// sum of unit cost * quantity over all bill items. Items referencing
// unknown products contribute zero cost. Zero sales yields zero.
func NetProfitMargin(bills []billing.Bill, products []catalog.Product) float64 {
	sales := TotalSales(bills)
	if sales == 0 {
		return 0
	}
	var cost float64
	for _, b := range bills {
		for _, it := range b.Items {
			product, ok := catalog.FindByID(products, it.ProductID)
			if !ok {
				continue
			}
			cost += product.CostPrice * float64(it.Quantity)
		}
	}
	return (sales - cost) / sales * 100
}

// AverageOrderValue returns total sales divided by the bill count, or zero
// when there are no bills.
func AverageOrderValue(bills []billing.Bill) float64 {
	if len(bills) == 0 {
		return 0
	}
	return TotalSales(bills) / float64(len(bills))
}

// TopProduct identifies the product with the highest summed revenue.
type TopProduct struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Revenue   float64 `json:"revenue"`
}

// TopProductByRevenue groups item subtotals by product across all bills and
// returns the maximum. Ties break in first-encountered order. The second
// return is false when there are no bills.
func TopProductByRevenue(bills []billing.Bill, products []catalog.Product) (TopProduct, bool) {
	revenue := make(map[string]float64)
	var order []string
	for _, b := range bills {
		for _, it := range b.Items {
			if _, seen := revenue[it.ProductID]; !seen {
				order = append(order, it.ProductID)
			}
			revenue[it.ProductID] += it.Subtotal
		}
	}
	if len(order) == 0 {
		return TopProduct{}, false
	}
	top := order[0]
	for _, id := range order[1:] {
		if revenue[id] > revenue[top] {
			top = id
		}
	}
	name := "Unknown"
	if p, ok := catalog.FindByID(products, top); ok {
		name = p.Name
	}
	return TopProduct{ProductID: top, Name: name, Revenue: revenue[top]}, true
}

// InventoryValuation sums sale price * stock over all products. Sale price
// is deliberate: the figure is shelf value, not cost basis.
func InventoryValuation(products []catalog.Product) float64 {
	var sum float64
	for _, p := range products {
		sum += p.Price * float64(p.Stock)
	}
	return sum
}

// LowStockProduct returns the first product, in collection order, at or
// below its reorder point. The second return is false when none qualifies.
func LowStockProduct(products []catalog.Product) (catalog.Product, bool) {
	for _, p := range products {
		if p.Stock <= p.ReorderPoint {
			return p, true
		}
	}
	return catalog.Product{}, false
}
