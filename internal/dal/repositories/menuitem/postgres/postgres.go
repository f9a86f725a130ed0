package postgresrepo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/corray333/order-ledger/internal/service/models/menuitem"
	"github.com/jackc/pgx/v5"
)

// MenuItemDal represents menu item data access layer model.
type MenuItemDal struct {
	Id       int64   `db:"id"`
	ItemName string  `db:"item_name"`
	Rate     float64 `db:"rate"`
}

// ToModel converts MenuItemDal to service layer MenuItem model.
func (m *MenuItemDal) ToModel() *menuitem.MenuItem {
	return &menuitem.MenuItem{
		ID:       m.Id,
		ItemName: m.ItemName,
		Rate:     m.Rate,
	}
}

// GenericConn is the subset of pgxpool.Pool used by read-only repositories.
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

// PostgresMenuItemRepository represents a Postgres menu item repository.
type PostgresMenuItemRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresMenuItemRepository creates a new Postgres menu item repository.
func NewPostgresMenuItemRepository(conn GenericConn) *PostgresMenuItemRepository {
	return &PostgresMenuItemRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// List retrieves the full menu. No filtering, no pagination.
func (r *PostgresMenuItemRepository) List(ctx context.Context) ([]menuitem.MenuItem, error) {
	query := r.sb.
		Select("id", "item_name", "rate").
		From("menu_items").
		OrderBy("id")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	result := []menuitem.MenuItem{}
	for rows.Next() {
		var dal MenuItemDal
		if err := rows.Scan(&dal.Id, &dal.ItemName, &dal.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
