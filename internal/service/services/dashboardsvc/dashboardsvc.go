package dashboardsvc

import (
	"context"

	idashboard "github.com/corray333/order-ledger/internal/dal/interfaces/dashboard"
	"github.com/corray333/order-ledger/internal/dal/postgres"
	dashboardrepo "github.com/corray333/order-ledger/internal/dal/repositories/dashboard/postgres"
	"github.com/corray333/order-ledger/internal/service/models/dashboard"
	"github.com/corray333/order-ledger/internal/service/models/daterange"
)

// DashboardService serves the read-only aggregate queries.
type DashboardService struct {
	repo idashboard.PostgresRepository
}

// option is a function that configures the DashboardService.
type option func(*DashboardService)

// MustNewDashboardService creates a new DashboardService.
func MustNewDashboardService(opts ...option) *DashboardService {
	s := &DashboardService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPostgresClient wires the postgres-backed repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *DashboardService) {
		s.repo = dashboardrepo.NewPostgresDashboardRepository(pgClient.Pool())
	}
}

// WithRepository sets the dashboard repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithRepository(repo idashboard.PostgresRepository) option {
	return func(s *DashboardService) {
		s.repo = repo
	}
}

// SalesByItem returns total sales per item within the optional range.
func (s *DashboardService) SalesByItem(ctx context.Context, r daterange.Range) ([]dashboard.ItemSales, error) {
	return s.repo.SalesByItem(ctx, r)
}

// DailySales returns total sales per calendar day within the optional range.
func (s *DashboardService) DailySales(ctx context.Context, r daterange.Range) ([]dashboard.DailySales, error) {
	return s.repo.DailySales(ctx, r)
}

// PaymentStatusDistribution returns order counts and totals per payment status.
func (s *DashboardService) PaymentStatusDistribution(
	ctx context.Context,
	r daterange.Range,
) ([]dashboard.StatusSlice, error) {
	return s.repo.PaymentStatusDistribution(ctx, r)
}

// TopPendingCustomers returns the customers with the largest unpaid amounts.
func (s *DashboardService) TopPendingCustomers(ctx context.Context) ([]dashboard.PendingCustomer, error) {
	return s.repo.TopPendingCustomers(ctx)
}
