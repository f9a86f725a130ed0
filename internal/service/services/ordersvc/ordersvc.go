package ordersvc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	iorder "github.com/corray333/order-ledger/internal/dal/interfaces/order"
	iorderitem "github.com/corray333/order-ledger/internal/dal/interfaces/orderitem"
	"github.com/corray333/order-ledger/internal/dal/postgres"
	"github.com/corray333/order-ledger/internal/dal/uow"
	"github.com/corray333/order-ledger/internal/service/models/billing"
	"github.com/corray333/order-ledger/internal/service/models/order"
)

// OrderService records orders in the ledger.
type OrderService struct {
	pgClient   *postgres.Client
	uowFactory func() unitOfWork
}

type unitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() iorder.PostgresRepository
	OrderItemRepository() iorderitem.PostgresRepository
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.uowFactory == nil {
		s.uowFactory = func() unitOfWork {
			return uow.NewUnitOfWork(s.pgClient)
		}
	}

	return s
}

// WithPostgresClient sets the Postgres client for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *OrderService) {
		s.pgClient = pgClient
	}
}

// WithUnitOfWorkFactory overrides how transactional scopes are created.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithUnitOfWorkFactory(factory func() unitOfWork) option {
	return func(s *OrderService) {
		s.uowFactory = factory
	}
}

// CreateOrder computes the order totals, allocates a bill number and
// persists the order with its line items in a single transaction.
//
// The payload is recorded as received: an empty item list produces an
// order with zero totals and no lines, and prices or quantities are not
// range-checked. The bill sequence is read inside the transaction and is
// never cached in-process.
func (s *OrderService) CreateOrder(ctx context.Context, o order.Order) (order.Order, error) {
	totals := billing.Compute(o.OrderItems)
	o.Subtotal = totals.Subtotal
	o.Discount = totals.Discount
	o.GST = totals.GST
	o.TotalAmount = totals.TotalAmount

	now := time.Now()
	o.CreatedAt = now
	o.UpdatedAt = now

	work := s.uowFactory()

	if err := work.Begin(ctx); err != nil {
		return order.Order{}, err
	}
	defer func() {
		if err := work.Rollback(ctx); err != nil {
			slog.Error("Failed to roll back create order transaction", "error", err)
		}
	}()

	seq, err := work.OrderRepository().NextBillSequence(ctx)
	if err != nil {
		return order.Order{}, err
	}
	o.BillNumber = billing.FormatBillNumber(seq)

	inserted, err := work.OrderRepository().Insert(ctx, o)
	if err != nil {
		return order.Order{}, err
	}

	items := inserted.OrderItems
	for i := range items {
		items[i].OrderID = inserted.ID
		items[i].Total = billing.LineTotal(items[i].Price, items[i].Quantity)
		items[i].CreatedAt = now
		items[i].UpdatedAt = now
	}

	items, err = work.OrderItemRepository().BulkInsert(ctx, items)
	if err != nil {
		return order.Order{}, err
	}
	inserted.OrderItems = items

	if err := work.Commit(ctx); err != nil {
		return order.Order{}, fmt.Errorf("failed to commit order: %w", err)
	}

	return inserted, nil
}
