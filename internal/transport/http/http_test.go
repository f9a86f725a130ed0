package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextErrorsBoundary(t *testing.T) {
	t.Run("passes successful responses through", func(t *testing.T) {
		h := textErrors("fetch failed", func(w http.ResponseWriter, _ *http.Request) error {
			w.WriteHeader(http.StatusOK)
			_, err := w.Write([]byte("[]"))

			return err
		})

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/api/menu-items", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("maps store failures to 500 text", func(t *testing.T) {
		h := textErrors("fetch failed", func(http.ResponseWriter, *http.Request) error {
			return errors.New("connection refused")
		})

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/api/menu-items", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "fetch failed\n", w.Body.String())
	})
}

func TestJSONErrorsBoundary(t *testing.T) {
	t.Run("order family failure shape", func(t *testing.T) {
		h := jsonErrors(orderFailure, func(http.ResponseWriter, *http.Request) error {
			return errors.New("constraint violation")
		})

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodPost, "/api/orders", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "failed to create order", body["message"])
	})

	t.Run("dashboard family failure shape", func(t *testing.T) {
		h := jsonErrors(dashboardFailure, func(http.ResponseWriter, *http.Request) error {
			return errors.New("connection refused")
		})

		w := httptest.NewRecorder()
		h(w, httptest.NewRequest(http.MethodGet, "/api/dashboard/daily-sales", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "failed to fetch dashboard data", body["error"])
	})
}
