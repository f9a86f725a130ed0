package dashboardhandler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/corray333/order-ledger/internal/service/models/dashboard"
	"github.com/corray333/order-ledger/internal/service/models/daterange"
	"github.com/gorilla/schema"
)

// service is an interface for the service layer.
type service interface {
	SalesByItem(ctx context.Context, r daterange.Range) ([]dashboard.ItemSales, error)
	DailySales(ctx context.Context, r daterange.Range) ([]dashboard.DailySales, error)
	PaymentStatusDistribution(ctx context.Context, r daterange.Range) ([]dashboard.StatusSlice, error)
	TopPendingCustomers(ctx context.Context) ([]dashboard.PendingCustomer, error)
}

// dateRangeRequest represents the optional date bounds of a dashboard
// request. An absent parameter means the range is unbounded on that side.
type dateRangeRequest struct {
	StartDate string `schema:"startDate"`
	EndDate   string `schema:"endDate"`
}

// decodeRange extracts the optional date range from query parameters.
func decodeRange(r *http.Request) (daterange.Range, error) {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)

	req := dateRangeRequest{}
	if err := decoder.Decode(&req, r.URL.Query()); err != nil {
		return daterange.Range{}, fmt.Errorf("failed to decode query parameters: %w", err)
	}

	return daterange.Parse(req.StartDate, req.EndDate)
}

func writeJSON(w http.ResponseWriter, v any) error {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("failed to encode dashboard response: %w", err)
	}

	return nil
}

// SalesByItem handles the sales-by-item aggregate request.
func SalesByItem(w http.ResponseWriter, r *http.Request, service service) error {
	rng, err := decodeRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding date range for sales by item", "error", err)

		return nil
	}

	rows, err := service.SalesByItem(r.Context(), rng)
	if err != nil {
		return err
	}

	return writeJSON(w, rows)
}

// DailySales handles the daily sales aggregate request.
func DailySales(w http.ResponseWriter, r *http.Request, service service) error {
	rng, err := decodeRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding date range for daily sales", "error", err)

		return nil
	}

	rows, err := service.DailySales(r.Context(), rng)
	if err != nil {
		return err
	}

	return writeJSON(w, rows)
}

// PaymentStatusDistribution handles the payment status distribution request.
func PaymentStatusDistribution(w http.ResponseWriter, r *http.Request, service service) error {
	rng, err := decodeRange(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding date range for payment status distribution", "error", err)

		return nil
	}

	rows, err := service.PaymentStatusDistribution(r.Context(), rng)
	if err != nil {
		return err
	}

	return writeJSON(w, rows)
}

// TopPendingCustomers handles the top pending customers request.
func TopPendingCustomers(w http.ResponseWriter, r *http.Request, service service) error {
	rows, err := service.TopPendingCustomers(r.Context())
	if err != nil {
		return err
	}

	return writeJSON(w, rows)
}
