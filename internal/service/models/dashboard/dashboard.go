package dashboard

// ItemSales is one row of the sales-by-item aggregate.
type ItemSales struct {
	ItemName   string  `json:"item_name"`
	TotalSales float64 `json:"total_sales"`
}

// DailySales is one row of the per-calendar-day sales aggregate.
type DailySales struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"total_sales"`
}

// StatusSlice is one row of the payment-status distribution.
type StatusSlice struct {
	PaymentStatus string  `json:"payment_status"`
	CountOrders   int64   `json:"count_orders"`
	TotalAmount   float64 `json:"total_amount"`
}

// PendingCustomer is one row of the top-pending-customers aggregate.
type PendingCustomer struct {
	CustomerName       string  `json:"customer_name"`
	CustomerPhone      string  `json:"customer_phone"`
	PendingBillsCount  int64   `json:"pending_bills_count"`
	TotalPendingAmount float64 `json:"total_pending_amount"`
}
