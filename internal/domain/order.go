package domain

import "time"

// OrderItem snapshots a product's title and price at purchase time, so the
// order is unaffected by later catalog changes.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type ShippingInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Order is immutable once appended to the ledger.
type Order struct {
	ID        string       `json:"id"`
	Username  string       `json:"username"`
	CreatedAt time.Time    `json:"created_at"`
	Items     []OrderItem  `json:"items"`
	Totals    CartTotals   `json:"totals"`
	Shipping  ShippingInfo `json:"shipping"`
}
