package createorder

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/corray333/order-ledger/internal/service/models/order"
	"github.com/corray333/order-ledger/internal/service/models/orderitem"
)

// service is an interface for the service layer.
type service interface {
	CreateOrder(ctx context.Context, o order.Order) (order.Order, error)
}

// itemInCreateOrderRequest represents an item in a create order request.
// Values are recorded as received; quantities and prices are not
// range-checked here.
type itemInCreateOrderRequest struct {
	ItemName string  `json:"item_name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// createOrderRequest represents a create order request.
type createOrderRequest struct {
	CustomerName  string                     `json:"customer_name"`
	CustomerPhone string                     `json:"customer_phone"`
	TableNumber   *int                       `json:"table_number"`
	OrderType     string                     `json:"order_type"`
	PaymentStatus string                     `json:"payment_status"`
	Items         []itemInCreateOrderRequest `json:"items"`
}

// toModel converts createOrderRequest to order.Order.
func (r *createOrderRequest) toModel() order.Order {
	items := make([]orderitem.OrderItem, len(r.Items))
	for i, item := range r.Items {
		items[i] = orderitem.OrderItem{
			ItemName: item.ItemName,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}

	return order.Order{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		TableNumber:   r.TableNumber,
		OrderType:     r.OrderType,
		PaymentStatus: r.PaymentStatus,
		OrderItems:    items,
	}
}

// createOrderResponse represents a successful create order response.
type createOrderResponse struct {
	Success     bool    `json:"success"`
	OrderID     int64   `json:"orderId"`
	BillNumber  string  `json:"billNumber"`
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	GST         float64 `json:"gst"`
	TotalAmount float64 `json:"totalAmount"`
}

// CreateOrder handles the create order request.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) error {
	req := createOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		slog.Error("Error decoding request body for create order", "error", err)

		return nil
	}

	created, err := service.CreateOrder(r.Context(), req.toModel())
	if err != nil {
		return err
	}

	resp := createOrderResponse{
		Success:     true,
		OrderID:     created.ID,
		BillNumber:  created.BillNumber,
		Subtotal:    created.Subtotal,
		Discount:    created.Discount,
		GST:         created.GST,
		TotalAmount: created.TotalAmount,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return fmt.Errorf("failed to encode create order response: %w", err)
	}

	return nil
}
