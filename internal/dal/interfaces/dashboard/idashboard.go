package idashboard

import (
	"context"

	"github.com/corray333/order-ledger/internal/service/models/dashboard"
	"github.com/corray333/order-ledger/internal/service/models/daterange"
)

// PostgresRepository is an interface for the dashboard postgres repository.
type PostgresRepository interface {
	SalesByItem(ctx context.Context, r daterange.Range) ([]dashboard.ItemSales, error)
	DailySales(ctx context.Context, r daterange.Range) ([]dashboard.DailySales, error)
	PaymentStatusDistribution(ctx context.Context, r daterange.Range) ([]dashboard.StatusSlice, error)
	TopPendingCustomers(ctx context.Context) ([]dashboard.PendingCustomer, error)
}
