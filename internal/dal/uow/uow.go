package uow

import (
	"context"
	"fmt"

	iorder "github.com/corray333/order-ledger/internal/dal/interfaces/order"
	iorderitem "github.com/corray333/order-ledger/internal/dal/interfaces/orderitem"
	"github.com/corray333/order-ledger/internal/dal/postgres"
	orderrepo "github.com/corray333/order-ledger/internal/dal/repositories/order/postgres"
	orderitemrepo "github.com/corray333/order-ledger/internal/dal/repositories/orderitem/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// unitOfWork scopes the order repositories to a single transaction. The
// pool checkout lives exactly as long as the transaction: Commit or
// Rollback returns the connection on every exit path.
type unitOfWork struct {
	pool          *pgxpool.Pool
	tx            pgx.Tx
	orderRepo     iorder.PostgresRepository
	orderItemRepo iorderitem.PostgresRepository
}

// NewUnitOfWork creates a unit of work bound to the pool. Until Begin is
// called the repositories run in auto-commit mode.
func NewUnitOfWork(db *postgres.Client) *unitOfWork {
	return &unitOfWork{
		pool:          db.Pool(),
		orderRepo:     orderrepo.NewPostgresOrderRepository(db.Pool()),
		orderItemRepo: orderitemrepo.NewPostgresOrderItemRepository(db.Pool()),
	}
}

// OrderRepository returns the order repository bound to the current scope.
func (u *unitOfWork) OrderRepository() iorder.PostgresRepository {
	return u.orderRepo
}

// OrderItemRepository returns the order item repository bound to the current scope.
func (u *unitOfWork) OrderItemRepository() iorderitem.PostgresRepository {
	return u.orderItemRepo
}

// Begin starts a transaction and rebinds the repositories to it.
func (u *unitOfWork) Begin(ctx context.Context) error {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	u.tx = tx
	u.orderRepo = orderrepo.NewPostgresOrderRepository(tx)
	u.orderItemRepo = orderitemrepo.NewPostgresOrderItemRepository(tx)

	return nil
}

// Commit commits the transaction and releases the connection.
func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Commit(ctx)
	u.tx = nil

	return err
}

// Rollback aborts the transaction. Calling it after Commit, or without
// Begin, is a no-op, so it is safe to defer unconditionally.
func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Rollback(ctx)
	u.tx = nil

	return err
}
