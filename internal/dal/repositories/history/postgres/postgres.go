package postgresrepo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/corray333/order-ledger/internal/service/models/history"
	"github.com/jackc/pgx/v5"
)

// GenericConn is the subset of pgxpool.Pool used by read-only repositories.
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

// PostgresHistoryRepository reads the flattened order history. The join
// and aggregation live in the customer_order_items view; rows are passed
// through unmodified.
type PostgresHistoryRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresHistoryRepository creates a new Postgres order history repository.
func NewPostgresHistoryRepository(conn GenericConn) *PostgresHistoryRepository {
	return &PostgresHistoryRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// List retrieves the per-customer/per-item order history.
func (r *PostgresHistoryRepository) List(ctx context.Context) ([]history.Row, error) {
	query := r.sb.
		Select(
			"customer_name",
			"customer_phone",
			"item_name",
			"total_quantity",
			"order_type",
			"total_spent_on_item",
		).
		From("customer_order_items")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query order history: %w", err)
	}
	defer rows.Close()

	result := []history.Row{}
	for rows.Next() {
		var row history.Row
		err := rows.Scan(
			&row.CustomerName,
			&row.CustomerPhone,
			&row.ItemName,
			&row.TotalQuantity,
			&row.OrderType,
			&row.TotalSpentOnItem,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order history row: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
