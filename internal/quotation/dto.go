package quotation

import "time"

// ItemRequest is one quotation line as submitted by the client.
type ItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"gte=0"`
}

// TermRequest is one payment term as submitted by the client.
type TermRequest struct {
	Kind        TermKind `json:"kind" validate:"required,oneof=predefined custom"`
	Description string   `json:"description" validate:"required,max=200"`
	Percentage  float64  `json:"percentage" validate:"required,gt=0,lte=100"`
	Conditions  string   `json:"conditions,omitempty" validate:"max=500"`
}

// CreateQuotationRequest carries a new quotation.
type CreateQuotationRequest struct {
	BusinessName        string        `json:"business_name" validate:"required,max=120"`
	BusinessAddress     string        `json:"business_address" validate:"max=300"`
	BusinessPhone       string        `json:"business_phone" validate:"max=20"`
	VendorName          string        `json:"vendor_name" validate:"required,max=120"`
	VendorEmail         string        `json:"vendor_email" validate:"omitempty,email"`
	VendorPhone         string        `json:"vendor_phone" validate:"max=20"`
	VendorAddress       string        `json:"vendor_address" validate:"max=300"`
	Items               []ItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryAddress     string        `json:"delivery_address" validate:"max=300"`
	ExpectedDelivery    *time.Time    `json:"expected_delivery,omitempty"`
	PaymentTerms        []TermRequest `json:"payment_terms" validate:"dive"`
	SpecialInstructions string        `json:"special_instructions,omitempty" validate:"max=1000"`
}

// UpdateQuotationRequest carries a full replacement for an existing
// quotation, including its (possibly changed) status.
type UpdateQuotationRequest struct {
	CreateQuotationRequest
	Status Status `json:"status" validate:"required"`
}

// StatusRequest carries a bare status transition.
type StatusRequest struct {
	Status Status `json:"status" validate:"required"`
}
