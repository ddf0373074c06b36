package models

import "time"

// SaleRecord is one completed transaction as returned by the upstream
// sales-recording API. Records are immutable once fetched; they live only
// for the duration of a single report query.
type SaleRecord struct {
	ID            int64      `json:"id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone *string    `json:"customer_phone,omitempty"`
	CustomerType  *string    `json:"customer_type,omitempty"`
	Items         []LineItem `json:"items"`
	TotalAmount   float64    `json:"total_amount"`
	CreatedAt     time.Time  `json:"created_at"`
}

// LineItem is one product line within a SaleRecord. It has no identity of
// its own beyond its position in the record. Numeric fields absent on the
// wire decode to zero, which is exactly the defaulting the aggregator wants.
type LineItem struct {
	ProductName string  `json:"product_name"`
	ProductSku  *string `json:"product_sku,omitempty"`
	Category    *string `json:"category,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}
