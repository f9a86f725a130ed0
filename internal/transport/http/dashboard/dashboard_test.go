package dashboardhandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/corray333/order-ledger/internal/service/models/dashboard"
	"github.com/corray333/order-ledger/internal/service/models/daterange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	gotRange daterange.Range

	itemSales []dashboard.ItemSales
	daily     []dashboard.DailySales
	statuses  []dashboard.StatusSlice
	pending   []dashboard.PendingCustomer
	err       error
}

func (s *fakeService) SalesByItem(_ context.Context, r daterange.Range) ([]dashboard.ItemSales, error) {
	s.gotRange = r

	return s.itemSales, s.err
}

func (s *fakeService) DailySales(_ context.Context, r daterange.Range) ([]dashboard.DailySales, error) {
	s.gotRange = r

	return s.daily, s.err
}

func (s *fakeService) PaymentStatusDistribution(_ context.Context, r daterange.Range) ([]dashboard.StatusSlice, error) {
	s.gotRange = r

	return s.statuses, s.err
}

func (s *fakeService) TopPendingCustomers(_ context.Context) ([]dashboard.PendingCustomer, error) {
	return s.pending, s.err
}

func TestSalesByItemDecodesBounds(t *testing.T) {
	svc := &fakeService{itemSales: []dashboard.ItemSales{
		{ItemName: "Masala Dosa", TotalSales: 400},
		{ItemName: "Filter Coffee", TotalSales: 90},
	}}

	r := httptest.NewRequest(http.MethodGet, "/api/dashboard/sales-by-item?startDate=2025-01-01&endDate=2025-01-31", nil)
	w := httptest.NewRecorder()

	require.NoError(t, SalesByItem(w, r, svc))
	assert.Equal(t, http.StatusOK, w.Code)

	require.NotNil(t, svc.gotRange.Start)
	require.NotNil(t, svc.gotRange.End)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *svc.gotRange.Start)

	var rows []dashboard.ItemSales
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Masala Dosa", rows[0].ItemName)
}

func TestSalesByItemAbsentParamsMeanUnbounded(t *testing.T) {
	svc := &fakeService{itemSales: []dashboard.ItemSales{}}

	r := httptest.NewRequest(http.MethodGet, "/api/dashboard/sales-by-item", nil)
	w := httptest.NewRecorder()

	require.NoError(t, SalesByItem(w, r, svc))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, svc.gotRange.Start)
	assert.Nil(t, svc.gotRange.End)
	// empty aggregates serialize as an empty array, not null
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestSalesByItemMalformedDate(t *testing.T) {
	svc := &fakeService{}

	r := httptest.NewRequest(http.MethodGet, "/api/dashboard/sales-by-item?startDate=31-01-2025", nil)
	w := httptest.NewRecorder()

	require.NoError(t, SalesByItem(w, r, svc))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDailySales(t *testing.T) {
	svc := &fakeService{daily: []dashboard.DailySales{
		{Date: "2025-01-01", TotalSales: 500},
	}}

	r := httptest.NewRequest(http.MethodGet, "/api/dashboard/daily-sales", nil)
	w := httptest.NewRecorder()

	require.NoError(t, DailySales(w, r, svc))
	assert.Equal(t, http.StatusOK, w.Code)

	var rows []dashboard.DailySales
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "2025-01-01", rows[0].Date)
}

func TestPaymentStatusDistribution(t *testing.T) {
	svc := &fakeService{statuses: []dashboard.StatusSlice{
		{PaymentStatus: "Paid", CountOrders: 3, TotalAmount: 640.5},
		{PaymentStatus: "Pending", CountOrders: 1, TotalAmount: 106.2},
	}}

	r := httptest.NewRequest(http.MethodGet, "/api/dashboard/payment-status-distribution", nil)
	w := httptest.NewRecorder()

	require.NoError(t, PaymentStatusDistribution(w, r, svc))
	assert.Equal(t, http.StatusOK, w.Code)

	var rows []dashboard.StatusSlice
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 2)
}

func TestTopPendingCustomers(t *testing.T) {
	svc := &fakeService{pending: []dashboard.PendingCustomer{
		{CustomerName: "Asha", CustomerPhone: "9876543210", PendingBillsCount: 2, TotalPendingAmount: 212.4},
	}}

	r := httptest.NewRequest(http.MethodGet, "/api/dashboard/top-pending-customers", nil)
	w := httptest.NewRecorder()

	require.NoError(t, TopPendingCustomers(w, r, svc))
	assert.Equal(t, http.StatusOK, w.Code)

	var rows []dashboard.PendingCustomer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].PendingBillsCount)
}

func TestStoreFailureIsReturned(t *testing.T) {
	svc := &fakeService{err: errors.New("connection refused")}

	r := httptest.NewRequest(http.MethodGet, "/api/dashboard/daily-sales", nil)
	w := httptest.NewRecorder()

	require.Error(t, DailySales(w, r, svc))
}
