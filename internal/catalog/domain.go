package catalog

// Product is a sellable inventory item. ID is assigned once and never
// changes; Stock is mutated only by the stock ledger and product updates.
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	CostPrice    float64 `json:"cost_price"`
	GSTRate      float64 `json:"gst_rate"`
	Stock        int     `json:"stock"`
	ReorderPoint int     `json:"reorder_point"`
}

// FindByID returns the product with the given id from products, if present.
func FindByID(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
