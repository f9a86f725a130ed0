package catalogsvc

import (
	"context"

	ihistory "github.com/corray333/order-ledger/internal/dal/interfaces/history"
	imenuitem "github.com/corray333/order-ledger/internal/dal/interfaces/menuitem"
	"github.com/corray333/order-ledger/internal/dal/postgres"
	historyrepo "github.com/corray333/order-ledger/internal/dal/repositories/history/postgres"
	menuitemrepo "github.com/corray333/order-ledger/internal/dal/repositories/menuitem/postgres"
	"github.com/corray333/order-ledger/internal/service/models/history"
	"github.com/corray333/order-ledger/internal/service/models/menuitem"
)

// CatalogService serves the menu catalog and the flattened order history.
type CatalogService struct {
	menuItemRepo imenuitem.PostgresRepository
	historyRepo  ihistory.PostgresRepository
}

// option is a function that configures the CatalogService.
type option func(*CatalogService)

// MustNewCatalogService creates a new CatalogService.
func MustNewCatalogService(opts ...option) *CatalogService {
	s := &CatalogService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithPostgresClient wires the postgres-backed repositories.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPostgresClient(pgClient *postgres.Client) option {
	return func(s *CatalogService) {
		s.menuItemRepo = menuitemrepo.NewPostgresMenuItemRepository(pgClient.Pool())
		s.historyRepo = historyrepo.NewPostgresHistoryRepository(pgClient.Pool())
	}
}

// WithMenuItemRepository sets the menu item repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithMenuItemRepository(repo imenuitem.PostgresRepository) option {
	return func(s *CatalogService) {
		s.menuItemRepo = repo
	}
}

// WithHistoryRepository sets the order history repository.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithHistoryRepository(repo ihistory.PostgresRepository) option {
	return func(s *CatalogService) {
		s.historyRepo = repo
	}
}

// ListMenuItems returns the full menu.
func (s *CatalogService) ListMenuItems(ctx context.Context) ([]menuitem.MenuItem, error) {
	return s.menuItemRepo.List(ctx)
}

// ListOrderHistory returns the per-customer/per-item order history.
func (s *CatalogService) ListOrderHistory(ctx context.Context) ([]history.Row, error) {
	return s.historyRepo.List(ctx)
}
