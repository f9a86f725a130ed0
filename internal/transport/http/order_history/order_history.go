package orderhistory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/corray333/order-ledger/internal/service/models/history"
)

// service is an interface for the service layer.
type service interface {
	ListOrderHistory(ctx context.Context) ([]history.Row, error)
}

// ListOrderHistory handles the order history request.
func ListOrderHistory(w http.ResponseWriter, r *http.Request, service service) error {
	rows, err := service.ListOrderHistory(r.Context())
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rows); err != nil {
		return fmt.Errorf("failed to encode order history response: %w", err)
	}

	return nil
}
