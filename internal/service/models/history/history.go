package history

// Row is one flattened per-customer/per-item line of the order history,
// sourced from the customer_order_items view and passed through as-is.
type Row struct {
	CustomerName     string  `json:"customer_name"`
	CustomerPhone    string  `json:"customer_phone"`
	ItemName         string  `json:"item_name"`
	TotalQuantity    int64   `json:"total_quantity"`
	OrderType        string  `json:"order_type"`
	TotalSpentOnItem float64 `json:"total_spent_on_item"`
}
