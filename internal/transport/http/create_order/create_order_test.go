package createorder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/corray333/order-ledger/internal/service/models/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	got     order.Order
	created order.Order
	err     error
}

func (s *fakeService) CreateOrder(_ context.Context, o order.Order) (order.Order, error) {
	s.got = o
	if s.err != nil {
		return order.Order{}, s.err
	}

	return s.created, nil
}

func TestCreateOrderSuccess(t *testing.T) {
	svc := &fakeService{
		created: order.Order{
			ID:          42,
			BillNumber:  "BILL-000042",
			Subtotal:    100,
			Discount:    10,
			GST:         16.20,
			TotalAmount: 106.20,
		},
	}

	body := `{
		"customer_name": "Asha",
		"customer_phone": "9876543210",
		"table_number": 4,
		"order_type": "Dine-In",
		"payment_status": "Pending",
		"items": [{"item_name": "Masala Dosa", "price": 50, "quantity": 2}]
	}`

	r := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	w := httptest.NewRecorder()

	require.NoError(t, CreateOrder(w, r, svc))
	assert.Equal(t, http.StatusOK, w.Code)

	// payload reached the service intact
	assert.Equal(t, "Asha", svc.got.CustomerName)
	require.NotNil(t, svc.got.TableNumber)
	assert.Equal(t, 4, *svc.got.TableNumber)
	require.Len(t, svc.got.OrderItems, 1)
	assert.Equal(t, "Masala Dosa", svc.got.OrderItems[0].ItemName)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(42), resp["orderId"])
	assert.Equal(t, "BILL-000042", resp["billNumber"])
	assert.InDelta(t, 106.20, resp["totalAmount"].(float64), 1e-9)
}

func TestCreateOrderEmptyItemsAccepted(t *testing.T) {
	svc := &fakeService{created: order.Order{ID: 1, BillNumber: "BILL-000001"}}

	r := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"customer_name":"Ravi"}`))
	w := httptest.NewRecorder()

	require.NoError(t, CreateOrder(w, r, svc))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.got.OrderItems)
}

func TestCreateOrderMalformedBody(t *testing.T) {
	svc := &fakeService{}

	r := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{not json"))
	w := httptest.NewRecorder()

	require.NoError(t, CreateOrder(w, r, svc))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderStoreFailureIsReturned(t *testing.T) {
	svc := &fakeService{err: errors.New("connection refused")}

	r := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	err := CreateOrder(w, r, svc)
	require.Error(t, err)
}
