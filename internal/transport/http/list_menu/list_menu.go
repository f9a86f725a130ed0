package listmenu

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/corray333/order-ledger/internal/service/models/menuitem"
)

// service is an interface for the service layer.
type service interface {
	ListMenuItems(ctx context.Context) ([]menuitem.MenuItem, error)
}

// ListMenuItems handles the menu listing request.
func ListMenuItems(w http.ResponseWriter, r *http.Request, service service) error {
	items, err := service.ListMenuItems(r.Context())
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(items); err != nil {
		return fmt.Errorf("failed to encode menu items response: %w", err)
	}

	return nil
}
