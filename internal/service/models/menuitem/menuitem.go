package menuitem

// MenuItem represents an entry of the menu catalog. Read-only from the
// ledger's perspective.
type MenuItem struct {
	ID       int64   `json:"id"`
	ItemName string  `json:"item_name"`
	Rate     float64 `json:"rate"`
}
