package billing

import (
	"fmt"
	"math"

	"github.com/corray333/order-ledger/internal/service/models/orderitem"
)

// Rates applied to every recorded order.
const (
	DiscountRate = 0.10
	GSTRate      = 0.18
)

// Totals holds the computed financial fields of an order, each rounded
// to two decimal places.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	GST         float64 `json:"gst"`
	TotalAmount float64 `json:"totalAmount"`
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// LineTotal returns the exact line total for a single order item.
func LineTotal(price float64, quantity int) float64 {
	return price * float64(quantity)
}

// Compute derives the order totals from its line items. The subtotal is
// accumulated unrounded; the discount applies to the raw subtotal and
// GST applies to the discounted amount.
func Compute(items []orderitem.OrderItem) Totals {
	subtotal := 0.0
	for _, item := range items {
		subtotal += LineTotal(item.Price, item.Quantity)
	}

	discount := Round2(subtotal * DiscountRate)
	gst := Round2((subtotal - discount) * GSTRate)

	return Totals{
		Subtotal:    Round2(subtotal),
		Discount:    discount,
		GST:         gst,
		TotalAmount: Round2(subtotal - discount + gst),
	}
}

// FormatBillNumber formats a sequence value as a bill number. Values are
// zero-padded to six digits; larger values print in full.
func FormatBillNumber(seq int64) string {
	return fmt.Sprintf("BILL-%06d", seq)
}
