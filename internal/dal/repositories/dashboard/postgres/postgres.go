package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/corray333/order-ledger/internal/service/models/dashboard"
	"github.com/corray333/order-ledger/internal/service/models/daterange"
	"github.com/corray333/order-ledger/internal/service/models/order"
	"github.com/jackc/pgx/v5"
)

// GenericConn is the subset of pgxpool.Pool used by read-only repositories.
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

// PostgresDashboardRepository runs the aggregate queries behind the
// dashboard endpoints. All filtering and grouping is delegated to the
// database.
type PostgresDashboardRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresDashboardRepository creates a new Postgres dashboard repository.
func NewPostgresDashboardRepository(conn GenericConn) *PostgresDashboardRepository {
	return &PostgresDashboardRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// withDateRange narrows a query to the inclusive date bounds on the
// given created_at column. A nil bound adds no predicate on that side.
func withDateRange(query sq.SelectBuilder, column string, r daterange.Range) sq.SelectBuilder {
	if r.Start != nil {
		query = query.Where(sq.GtOrEq{column: *r.Start})
	}
	if end := r.ExclusiveEnd(); end != nil {
		query = query.Where(sq.Lt{column: *end})
	}

	return query
}

func (r *PostgresDashboardRepository) salesByItemQuery(rng daterange.Range) sq.SelectBuilder {
	query := r.sb.
		Select("oi.item_name", "SUM(oi.total) AS total_sales").
		From("order_items oi").
		Join("orders o ON o.id = oi.order_id").
		GroupBy("oi.item_name").
		OrderBy("total_sales DESC")

	return withDateRange(query, "o.created_at", rng)
}

// SalesByItem returns the total sales per menu item, best sellers first.
func (r *PostgresDashboardRepository) SalesByItem(
	ctx context.Context,
	rng daterange.Range,
) ([]dashboard.ItemSales, error) {
	sql, args, err := r.salesByItemQuery(rng).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales by item: %w", err)
	}
	defer rows.Close()

	result := []dashboard.ItemSales{}
	for rows.Next() {
		var row dashboard.ItemSales
		if err := rows.Scan(&row.ItemName, &row.TotalSales); err != nil {
			return nil, fmt.Errorf("failed to scan sales by item row: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

func (r *PostgresDashboardRepository) dailySalesQuery(rng daterange.Range) sq.SelectBuilder {
	query := r.sb.
		Select("DATE(created_at) AS date", "SUM(total_amount) AS total_sales").
		From("orders").
		GroupBy("DATE(created_at)").
		OrderBy("date ASC")

	return withDateRange(query, "created_at", rng)
}

// DailySales returns the total order amount per calendar day, oldest first.
func (r *PostgresDashboardRepository) DailySales(
	ctx context.Context,
	rng daterange.Range,
) ([]dashboard.DailySales, error) {
	sql, args, err := r.dailySalesQuery(rng).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily sales: %w", err)
	}
	defer rows.Close()

	result := []dashboard.DailySales{}
	for rows.Next() {
		var row dashboard.DailySales
		var date time.Time
		if err := rows.Scan(&date, &row.TotalSales); err != nil {
			return nil, fmt.Errorf("failed to scan daily sales row: %w", err)
		}
		row.Date = date.Format(daterange.Layout)
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

func (r *PostgresDashboardRepository) paymentStatusQuery(rng daterange.Range) sq.SelectBuilder {
	query := r.sb.
		Select(
			"payment_status",
			"COUNT(*) AS count_orders",
			"SUM(total_amount) AS total_amount",
		).
		From("orders").
		GroupBy("payment_status")

	return withDateRange(query, "created_at", rng)
}

// PaymentStatusDistribution returns order counts and amounts grouped by
// payment status.
func (r *PostgresDashboardRepository) PaymentStatusDistribution(
	ctx context.Context,
	rng daterange.Range,
) ([]dashboard.StatusSlice, error) {
	sql, args, err := r.paymentStatusQuery(rng).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment status distribution: %w", err)
	}
	defer rows.Close()

	result := []dashboard.StatusSlice{}
	for rows.Next() {
		var row dashboard.StatusSlice
		if err := rows.Scan(&row.PaymentStatus, &row.CountOrders, &row.TotalAmount); err != nil {
			return nil, fmt.Errorf("failed to scan payment status row: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

func (r *PostgresDashboardRepository) topPendingCustomersQuery(status string, limit uint64) sq.SelectBuilder {
	return r.sb.
		Select(
			"customer_name",
			"customer_phone",
			"COUNT(*) AS pending_bills_count",
			"SUM(total_amount) AS total_pending_amount",
		).
		From("orders").
		Where(sq.Eq{"payment_status": status}).
		GroupBy("customer_name", "customer_phone").
		OrderBy("total_pending_amount DESC").
		Limit(limit)
}

// topPendingLimit caps the pending-customers aggregate.
const topPendingLimit = 5

// TopPendingCustomers returns at most five customers with unpaid orders,
// largest outstanding amount first.
func (r *PostgresDashboardRepository) TopPendingCustomers(
	ctx context.Context,
) ([]dashboard.PendingCustomer, error) {
	sql, args, err := r.topPendingCustomersQuery(order.PaymentStatusPending, topPendingLimit).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query top pending customers: %w", err)
	}
	defer rows.Close()

	result := []dashboard.PendingCustomer{}
	for rows.Next() {
		var row dashboard.PendingCustomer
		err := rows.Scan(
			&row.CustomerName,
			&row.CustomerPhone,
			&row.PendingBillsCount,
			&row.TotalPendingAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pending customer row: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
