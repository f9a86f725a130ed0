package postgresrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/corray333/order-ledger/internal/service/models/orderitem"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// OrderItemDal represents order item data access layer model.
type OrderItemDal struct {
	Id        int64     `db:"id"`
	OrderId   int64     `db:"order_id"`
	ItemName  string    `db:"item_name"`
	Price     float64   `db:"price"`
	Quantity  int       `db:"quantity"`
	Total     float64   `db:"total"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ToModel converts OrderItemDal to service layer OrderItem model.
func (oi *OrderItemDal) ToModel() *orderitem.OrderItem {
	return &orderitem.OrderItem{
		ID:        oi.Id,
		OrderID:   oi.OrderId,
		ItemName:  oi.ItemName,
		Price:     oi.Price,
		Quantity:  oi.Quantity,
		Total:     oi.Total,
		CreatedAt: oi.CreatedAt,
		UpdatedAt: oi.UpdatedAt,
	}
}

// OrderItemDalFromModel converts service layer OrderItem model to OrderItemDal.
func OrderItemDalFromModel(oi *orderitem.OrderItem) *OrderItemDal {
	return &OrderItemDal{
		Id:        oi.ID,
		OrderId:   oi.OrderID,
		ItemName:  oi.ItemName,
		Price:     oi.Price,
		Quantity:  oi.Quantity,
		Total:     oi.Total,
		CreatedAt: oi.CreatedAt,
		UpdatedAt: oi.UpdatedAt,
	}
}

// PostgresOrderItemRepository represents a Postgres order item repository.
type PostgresOrderItemRepository struct {
	conn GenericConn
}

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// NewPostgresOrderItemRepository creates a new Postgres order item repository.
func NewPostgresOrderItemRepository(conn GenericConn) *PostgresOrderItemRepository {
	return &PostgresOrderItemRepository{
		conn: conn,
	}
}

// BulkInsert inserts multiple order items and returns the inserted items
// with IDs. Uses unnest over parallel arrays so any number of lines is a
// single round trip.
func (r *PostgresOrderItemRepository) BulkInsert(
	ctx context.Context,
	orderItems []orderitem.OrderItem,
) ([]orderitem.OrderItem, error) {
	if len(orderItems) == 0 {
		return []orderitem.OrderItem{}, nil
	}

	sql := `
		INSERT INTO order_items (order_id, item_name, price, quantity, total, created_at, updated_at)
		SELECT order_id, item_name, price, quantity, total, created_at, updated_at
		FROM unnest($1::bigint[], $2::text[], $3::float8[], $4::int[], $5::float8[], $6::timestamptz[], $7::timestamptz[])
		AS t(order_id, item_name, price, quantity, total, created_at, updated_at)
		RETURNING id, order_id, item_name, price, quantity, total, created_at, updated_at
	`

	orderIds := make([]int64, len(orderItems))
	itemNames := make([]string, len(orderItems))
	prices := make([]float64, len(orderItems))
	quantities := make([]int32, len(orderItems))
	totals := make([]float64, len(orderItems))
	createdAts := make([]time.Time, len(orderItems))
	updatedAts := make([]time.Time, len(orderItems))

	for i, oi := range orderItems {
		orderIds[i] = oi.OrderID
		itemNames[i] = oi.ItemName
		prices[i] = oi.Price
		quantities[i] = int32(oi.Quantity)
		totals[i] = oi.Total
		createdAts[i] = oi.CreatedAt
		updatedAts[i] = oi.UpdatedAt
	}

	rows, err := r.conn.Query(ctx, sql,
		orderIds,
		itemNames,
		prices,
		quantities,
		totals,
		createdAts,
		updatedAts,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk insert order items: %w", err)
	}
	defer rows.Close()

	var result []orderitem.OrderItem
	for rows.Next() {
		var dal OrderItemDal
		var createdAt, updatedAt pgtype.Timestamptz

		err := rows.Scan(
			&dal.Id,
			&dal.OrderId,
			&dal.ItemName,
			&dal.Price,
			&dal.Quantity,
			&dal.Total,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}

		dal.CreatedAt = createdAt.Time
		dal.UpdatedAt = updatedAt.Time

		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
