package listmenu

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/corray333/order-ledger/internal/service/models/menuitem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	items []menuitem.MenuItem
	err   error
}

func (s *fakeService) ListMenuItems(context.Context) ([]menuitem.MenuItem, error) {
	return s.items, s.err
}

func TestListMenuItems(t *testing.T) {
	svc := &fakeService{items: []menuitem.MenuItem{
		{ID: 1, ItemName: "Masala Dosa", Rate: 80},
		{ID: 2, ItemName: "Idli Sambar", Rate: 50},
	}}

	w := httptest.NewRecorder()
	require.NoError(t, ListMenuItems(w, httptest.NewRequest(http.MethodGet, "/api/menu-items", nil), svc))

	assert.Equal(t, http.StatusOK, w.Code)

	var rows []menuitem.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Masala Dosa", rows[0].ItemName)
	assert.InDelta(t, 80.0, rows[0].Rate, 1e-9)
}

func TestListMenuItemsStoreFailure(t *testing.T) {
	svc := &fakeService{err: errors.New("connection refused")}

	w := httptest.NewRecorder()
	err := ListMenuItems(w, httptest.NewRequest(http.MethodGet, "/api/menu-items", nil), svc)
	require.Error(t, err)
}
