package models

// ProductSummary is the per-product aggregate derived from raw sale records.
// Summaries are keyed by SKU when present, otherwise by product name, and are
// recomputed from scratch for every report query.
type ProductSummary struct {
	Name           string  `json:"name"`
	Sku            *string `json:"sku,omitempty"`
	Category       *string `json:"category,omitempty"`
	Quantity       int     `json:"quantity"`
	Revenue        float64 `json:"revenue"`
	AvgPrice       float64 `json:"avg_price"`
	RevenueDisplay string  `json:"revenue_display,omitempty"`
}

// CustomerSummary is the per-customer aggregate derived from raw sale records,
// keyed by customer name (the only stable identity the upstream exposes).
type CustomerSummary struct {
	Name              string   `json:"name"`
	Phone             *string  `json:"phone,omitempty"`
	Type              *string  `json:"type,omitempty"`
	OrderCount        int      `json:"order_count"`
	TotalSpent        float64  `json:"total_spent"`
	Products          []string `json:"products"`
	TotalSpentDisplay string   `json:"total_spent_display,omitempty"`
}

// MonthlyTopCustomer is a pre-aggregated ranking row owned by the upstream
// API; this service only relays and formats it.
type MonthlyTopCustomer struct {
	CustomerName      string  `json:"customer_name"`
	CustomerPhone     *string `json:"customer_phone,omitempty"`
	CustomerType      *string `json:"customer_type,omitempty"`
	OrderCount        int     `json:"order_count"`
	TotalSpent        float64 `json:"total_spent"`
	TotalSpentDisplay string  `json:"total_spent_display,omitempty"`
}

// MonthlyTopProduct is the product counterpart of MonthlyTopCustomer.
type MonthlyTopProduct struct {
	ProductName    string  `json:"product_name"`
	ProductSku     *string `json:"product_sku,omitempty"`
	Category       *string `json:"category,omitempty"`
	Quantity       int     `json:"quantity"`
	Revenue        float64 `json:"revenue"`
	RevenueDisplay string  `json:"revenue_display,omitempty"`
}

// CustomerPurchase is one row of a customer's purchase history for a month,
// as delivered pre-aggregated by the upstream API.
type CustomerPurchase struct {
	CustomerName  string  `json:"customer_name"`
	CustomerPhone *string `json:"customer_phone,omitempty"`
	ProductName   string  `json:"product_name"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"total_price"`
	PurchasedAt   string  `json:"purchased_at,omitempty"` // YYYY-MM-DD
}

// MonthlySalesSummary holds the headline figures for one calendar month,
// computed from the raw records of that month.
type MonthlySalesSummary struct {
	Month                int     `json:"month"`
	Year                 int     `json:"year"`
	Label                string  `json:"label"` // e.g. "January 2026"
	OrderCount           int     `json:"order_count"`
	GrossRevenue         float64 `json:"gross_revenue"`
	ItemsSold            int     `json:"items_sold"`
	DistinctCustomers    int     `json:"distinct_customers"`
	AvgOrderValue        float64 `json:"avg_order_value"`
	GrossRevenueDisplay  string  `json:"gross_revenue_display,omitempty"`
	AvgOrderValueDisplay string  `json:"avg_order_value_display,omitempty"`
}

// DashboardSummary holds key sales metrics for the dashboard.
type DashboardSummary struct {
	OrdersToday         int     `json:"orders_today"`
	TotalSalesToday     float64 `json:"total_sales_today"`
	TotalSalesThisWeek  float64 `json:"total_sales_this_week"`
	TotalSalesThisMonth float64 `json:"total_sales_this_month"`
}

// ReportRequestParams holds common query parameters for requesting reports.
type ReportRequestParams struct {
	StartDate string `form:"start_date"` // YYYY-MM-DD
	EndDate   string `form:"end_date"`   // YYYY-MM-DD, inclusive
	Month     int    `form:"month"`      // 1-12
	Year      int    `form:"year"`
	Limit     int    `form:"limit"`    // 0 = no limit
	Customer  string `form:"customer"` // exact-name filter, case-insensitive
}
