package catalog

// CreateProductRequest carries a new product definition.
type CreateProductRequest struct {
	Name         string  `json:"name" validate:"required,max=120"`
	Category     string  `json:"category" validate:"required,max=60"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	CostPrice    float64 `json:"cost_price" validate:"gte=0"`
	GSTRate      float64 `json:"gst_rate" validate:"gte=0,lte=100"`
	Stock        int     `json:"stock" validate:"gte=0"`
	ReorderPoint int     `json:"reorder_point" validate:"gte=0"`
}

// UpdateProductRequest carries a full replacement for an existing product.
type UpdateProductRequest struct {
	Name         string  `json:"name" validate:"required,max=120"`
	Category     string  `json:"category" validate:"required,max=60"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	CostPrice    float64 `json:"cost_price" validate:"gte=0"`
	GSTRate      float64 `json:"gst_rate" validate:"gte=0,lte=100"`
	Stock        int     `json:"stock"`
	ReorderPoint int     `json:"reorder_point" validate:"gte=0"`
}
