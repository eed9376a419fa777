package billing

import (
	"time"

	"github.com/saral-app/saral/internal/catalog"
)

// PaymentType enumerates how a bill was settled.
type PaymentType string

const (
	PaymentTypeCash   PaymentType = "cash"
	PaymentTypeOnline PaymentType = "online"
)

// BillItem is one line of a bill. Price is copied from the product at
// selection time; Subtotal is always Price * Quantity.
type BillItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`
}

// Bill is a finalized sales invoice. Bills are immutable once created.
type Bill struct {
	ID            string      `json:"id"`
	BillNumber    string      `json:"bill_number"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	Items         []BillItem  `json:"items"`
	Total         float64     `json:"total"`
	Date          time.Time   `json:"date"`
	PaymentType   PaymentType `json:"payment_type"`
	GSTNumber     string      `json:"gst_number,omitempty"`
	IsGSTBill     bool        `json:"is_gst_bill"`
	TotalGST      float64     `json:"total_gst,omitempty"`
}

// GrandTotal is the amount payable including GST.
func (b Bill) GrandTotal() float64 {
	return b.Total + b.TotalGST
}

// NormalizeItems recomputes each item's subtotal from price and quantity.
// Subtotals are never trusted from input.
func NormalizeItems(items []BillItem) []BillItem {
	out := make([]BillItem, len(items))
	for i, it := range items {
		it.Subtotal = it.Price * float64(it.Quantity)
		out[i] = it
	}
	return out
}

// SumItems returns the bill total as the sum of item subtotals.
func SumItems(items []BillItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Subtotal
	}
	return total
}

// ComputeGST sums GST per line using the referenced product's rate. Lines
// referencing unknown products contribute zero GST.
func ComputeGST(items []BillItem, products []catalog.Product) float64 {
	var gst float64
	for _, it := range items {
		product, ok := catalog.FindByID(products, it.ProductID)
		if !ok {
			continue
		}
		gst += it.Subtotal * product.GSTRate / 100
	}
	return gst
}
