// Package quotation models vendor quotations, their payment terms, and the
// status lifecycle.
package quotation

import (
	"errors"
	"time"
)

// Status enumerates the quotation lifecycle.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// ErrInvalidTransition is returned for a status change outside the
// draft -> sent -> accepted|rejected table.
var ErrInvalidTransition = errors.New("invalid status transition")

var transitions = map[Status][]Status{
	StatusDraft: {StatusSent},
	StatusSent:  {StatusAccepted, StatusRejected},
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// CanTransition reports whether moving from s to next is legal. Staying on
// the same status is always allowed.
func (s Status) CanTransition(next Status) bool {
	if s == next {
		return true
	}
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// QuotationItem is one line of a quotation. Subtotal is always
// Price * Quantity.
type QuotationItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Subtotal  float64 `json:"subtotal"`
}

// Quotation is a vendor-facing proposal. Unlike bills, quotations may be
// updated in place or deleted.
type Quotation struct {
	ID                  string          `json:"id"`
	QuotationNumber     string          `json:"quotation_number"`
	Date                time.Time       `json:"date"`
	BusinessName        string          `json:"business_name"`
	BusinessAddress     string          `json:"business_address"`
	BusinessPhone       string          `json:"business_phone"`
	VendorName          string          `json:"vendor_name"`
	VendorEmail         string          `json:"vendor_email"`
	VendorPhone         string          `json:"vendor_phone"`
	VendorAddress       string          `json:"vendor_address"`
	Items               []QuotationItem `json:"items"`
	Total               float64         `json:"total"`
	DeliveryAddress     string          `json:"delivery_address"`
	ExpectedDelivery    *time.Time      `json:"expected_delivery,omitempty"`
	PaymentTerms        []PaymentTerm   `json:"payment_terms"`
	SpecialInstructions string          `json:"special_instructions,omitempty"`
	Status              Status          `json:"status"`
}

// NormalizeItems recomputes each item's subtotal from price and quantity.
func NormalizeItems(items []QuotationItem) []QuotationItem {
	out := make([]QuotationItem, len(items))
	for i, it := range items {
		it.Subtotal = it.Price * float64(it.Quantity)
		out[i] = it
	}
	return out
}

// SumItems returns the quotation total as the sum of item subtotals.
func SumItems(items []QuotationItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Subtotal
	}
	return total
}
