package order

import (
	"time"

	"github.com/corray333/order-ledger/internal/service/models/orderitem"
)

// Payment statuses as persisted on orders. The service records whatever
// status the client sends; only the pending-customers dashboard depends
// on an exact value.
const (
	PaymentStatusPending = "Pending"
	PaymentStatusPaid    = "Paid"
)

// Order represents a recorded order in the ledger.
type Order struct {
	ID            int64                 `json:"id"`
	CustomerName  string                `json:"customer_name"`
	CustomerPhone string                `json:"customer_phone"`
	TableNumber   *int                  `json:"table_number"`
	Subtotal      float64               `json:"subtotal"`
	Discount      float64               `json:"discount"`
	GST           float64               `json:"gst"`
	TotalAmount   float64               `json:"total_amount"`
	OrderType     string                `json:"order_type"`
	PaymentStatus string                `json:"payment_status"`
	BillNumber    string                `json:"bill_number"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
	OrderItems    []orderitem.OrderItem `json:"orderItems"`
}
