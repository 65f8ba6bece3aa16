package domain

// CartLine is one product/quantity pair in the shopping cart. A retained
// line always has Quantity >= 1; the cart engine removes lines that would
// drop to zero or below.
type CartLine struct {
	ProductID string `json:"id"`
	Quantity  int    `json:"qty"`
}

// CartTotals is computed from the live cart and catalog, never cached.
type CartTotals struct {
	Subtotal      float64 `json:"subtotal"`
	Shipping      float64 `json:"shipping"`
	Total         float64 `json:"total"`
	TotalQuantity int     `json:"total_quantity"`
}
