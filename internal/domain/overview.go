package domain

// Overview carries the aggregate figures shown on the admin dashboard.
type Overview struct {
	ProductCount    int64 `json:"product_count"`
	CategoryCount   int64 `json:"category_count"`
	SupplierCount   int64 `json:"supplier_count"`
	OrderCount      int64 `json:"order_count"`
	PendingOrders   int64 `json:"pending_orders"`
	RevenueCents    int64 `json:"revenue_cents"`
	LowStockCount   int64 `json:"low_stock_count"`
	RegisteredUsers int64 `json:"registered_users"`
}
