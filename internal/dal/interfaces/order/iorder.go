package iorder

import (
	"context"

	"github.com/corray333/order-ledger/internal/service/models/order"
)

// PostgresRepository is an interface for the order postgres repository.
type PostgresRepository interface {
	Insert(ctx context.Context, o order.Order) (order.Order, error)
	NextBillSequence(ctx context.Context) (int64, error)
}
