package billing

import (
	"testing"

	"github.com/corray333/order-ledger/internal/service/models/orderitem"
	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name  string
		items []orderitem.OrderItem
		want  Totals
	}{
		{
			name:  "subtotal 100 applies discount then gst",
			items: []orderitem.OrderItem{{Price: 50, Quantity: 2}},
			want:  Totals{Subtotal: 100, Discount: 10, GST: 16.20, TotalAmount: 106.20},
		},
		{
			name:  "empty item list yields zero totals",
			items: nil,
			want:  Totals{},
		},
		{
			name: "multiple lines accumulate before rounding",
			items: []orderitem.OrderItem{
				{Price: 80, Quantity: 1},
				{Price: 50, Quantity: 3},
				{Price: 20, Quantity: 2},
			},
			// subtotal 270, discount 27, gst 43.74
			want: Totals{Subtotal: 270, Discount: 27, GST: 43.74, TotalAmount: 286.74},
		},
		{
			name:  "fractional prices round per field",
			items: []orderitem.OrderItem{{Price: 33.33, Quantity: 3}},
			// subtotal 99.99, discount 10.00 (9.999), gst 16.20 (16.1982)
			want: Totals{Subtotal: 99.99, Discount: 10.00, GST: 16.20, TotalAmount: 106.19},
		},
		{
			name:  "negative values pass through unvalidated",
			items: []orderitem.OrderItem{{Price: -50, Quantity: 2}},
			want:  Totals{Subtotal: -100, Discount: -10, GST: -16.20, TotalAmount: -106.20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.items)
			assert.InDelta(t, tt.want.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.want.Discount, got.Discount, 1e-9)
			assert.InDelta(t, tt.want.GST, got.GST, 1e-9)
			assert.InDelta(t, tt.want.TotalAmount, got.TotalAmount, 1e-9)
		})
	}
}

func TestRound2(t *testing.T) {
	assert.InDelta(t, 16.20, Round2(16.1982), 1e-9)
	assert.InDelta(t, 10.0, Round2(9.999), 1e-9)
	assert.InDelta(t, 0.13, Round2(0.125), 1e-9)
	assert.InDelta(t, -0.13, Round2(-0.125), 1e-9)
	assert.InDelta(t, 0, Round2(0), 1e-9)
}

func TestLineTotal(t *testing.T) {
	assert.InDelta(t, 100.0, LineTotal(50, 2), 1e-9)
	assert.InDelta(t, 0.0, LineTotal(50, 0), 1e-9)
	assert.InDelta(t, -100.0, LineTotal(-50, 2), 1e-9)
}

func TestFormatBillNumber(t *testing.T) {
	tests := []struct {
		seq  int64
		want string
	}{
		{1, "BILL-000001"},
		{7, "BILL-000007"},
		{999999, "BILL-999999"},
		{1234567, "BILL-1234567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBillNumber(tt.seq))
	}
}
