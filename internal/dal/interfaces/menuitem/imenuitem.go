package imenuitem

import (
	"context"

	"github.com/corray333/order-ledger/internal/service/models/menuitem"
)

// PostgresRepository is an interface for the menu item postgres repository.
type PostgresRepository interface {
	List(ctx context.Context) ([]menuitem.MenuItem, error)
}
