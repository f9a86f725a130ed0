package ihistory

import (
	"context"

	"github.com/corray333/order-ledger/internal/service/models/history"
)

// PostgresRepository is an interface for the order history postgres repository.
type PostgresRepository interface {
	List(ctx context.Context) ([]history.Row, error)
}
