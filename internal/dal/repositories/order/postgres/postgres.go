package postgresrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/corray333/order-ledger/internal/service/models/order"
	"github.com/corray333/order-ledger/internal/service/models/orderitem"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// OrderDal represents order data access layer model.
type OrderDal struct {
	Id            int64     `db:"id"`
	CustomerName  string    `db:"customer_name"`
	CustomerPhone string    `db:"customer_phone"`
	TableNumber   *int      `db:"table_number"`
	Subtotal      float64   `db:"subtotal"`
	Discount      float64   `db:"discount"`
	Gst           float64   `db:"gst"`
	TotalAmount   float64   `db:"total_amount"`
	OrderType     string    `db:"order_type"`
	PaymentStatus string    `db:"payment_status"`
	BillNumber    string    `db:"bill_number"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// ToModel converts OrderDal to service layer Order model.
func (o *OrderDal) ToModel() *order.Order {
	return &order.Order{
		ID:            o.Id,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		TableNumber:   o.TableNumber,
		Subtotal:      o.Subtotal,
		Discount:      o.Discount,
		GST:           o.Gst,
		TotalAmount:   o.TotalAmount,
		OrderType:     o.OrderType,
		PaymentStatus: o.PaymentStatus,
		BillNumber:    o.BillNumber,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		OrderItems:    []orderitem.OrderItem{}, // Will be populated separately
	}
}

// OrderDalFromModel converts service layer Order model to OrderDal.
func OrderDalFromModel(o *order.Order) *OrderDal {
	return &OrderDal{
		Id:            o.ID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		TableNumber:   o.TableNumber,
		Subtotal:      o.Subtotal,
		Discount:      o.Discount,
		Gst:           o.GST,
		TotalAmount:   o.TotalAmount,
		OrderType:     o.OrderType,
		PaymentStatus: o.PaymentStatus,
		BillNumber:    o.BillNumber,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresOrderRepository represents a Postgres order repository.
type PostgresOrderRepository struct {
	conn GenericConn
}

// NewPostgresOrderRepository creates a new Postgres order repository.
func NewPostgresOrderRepository(conn GenericConn) *PostgresOrderRepository {
	return &PostgresOrderRepository{
		conn: conn,
	}
}

// Insert inserts a single order and returns it with the assigned ID.
func (r *PostgresOrderRepository) Insert(ctx context.Context, o order.Order) (order.Order, error) {
	sql := `
		INSERT INTO orders (
			customer_name,
			customer_phone,
			table_number,
			subtotal,
			discount,
			gst,
			total_amount,
			order_type,
			payment_status,
			bill_number,
			created_at,
			updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	dal := OrderDalFromModel(&o)

	err := r.conn.QueryRow(ctx, sql,
		dal.CustomerName,
		dal.CustomerPhone,
		dal.TableNumber,
		dal.Subtotal,
		dal.Discount,
		dal.Gst,
		dal.TotalAmount,
		dal.OrderType,
		dal.PaymentStatus,
		dal.BillNumber,
		dal.CreatedAt,
		dal.UpdatedAt,
	).Scan(&dal.Id)
	if err != nil {
		return order.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}

	model := dal.ToModel()
	model.OrderItems = append(model.OrderItems, o.OrderItems...)

	return *model, nil
}

// NextBillSequence returns the next value of the bill number sequence.
// The increment is atomic on the database side, so concurrent inserts
// never observe the same value.
func (r *PostgresOrderRepository) NextBillSequence(ctx context.Context) (int64, error) {
	var seq int64
	if err := r.conn.QueryRow(ctx, `SELECT nextval('bill_number_seq')`).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to get next bill sequence value: %w", err)
	}

	return seq, nil
}
