package billing

// ItemRequest is one bill line as submitted by the client. The price is
// resolved from the product at creation time; a submitted price is ignored.
type ItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateBillRequest carries a new bill.
type CreateBillRequest struct {
	CustomerName  string        `json:"customer_name" validate:"required,max=120"`
	CustomerPhone string        `json:"customer_phone" validate:"required,max=20"`
	PaymentType   PaymentType   `json:"payment_type" validate:"required,oneof=cash online"`
	Items         []ItemRequest `json:"items" validate:"required,min=1,dive"`
	GSTNumber     string        `json:"gst_number,omitempty" validate:"max=20"`
	IsGSTBill     bool          `json:"is_gst_bill"`
}
