//go:build integration

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biztime/internal/metrics"
	"biztime/internal/testutil"
	"biztime/internal/timeutil"
)

type apiClient struct {
	t   *testing.T
	srv *httptest.Server
}

func (c apiClient) call(method, path, body string) (int, map[string]any) {
	c.t.Helper()
	req, err := http.NewRequest(method, c.srv.URL+path, strings.NewReader(body))
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.srv.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	var out map[string]any
	require.NoError(c.t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestAPIAgainstPostgres(t *testing.T) {
	db := testutil.NewDB(t)
	clock, err := timeutil.NewClock("UTC")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app := initializeApp(db, logger, clock, metrics.New())
	srv := httptest.NewServer(app.routes())
	t.Cleanup(srv.Close)
	api := apiClient{t: t, srv: srv}
	today := time.Now().UTC().Format("2006-01-02")

	t.Run("company lifecycle", func(t *testing.T) {
		testutil.Reset(t, db)

		status, body := api.call(http.MethodPost, "/companies", `{"code":"ibm","name":"IBM","description":"Big blue."}`)
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, map[string]any{"code": "ibm", "name": "IBM", "description": "Big blue."}, body)

		status, body = api.call(http.MethodGet, "/companies/ibm", "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, []any{map[string]any{"code": "ibm", "name": "IBM", "description": "Big blue."}}, body["company"])

		status, _ = api.call(http.MethodPost, "/companies", `{"code":"ibm","name":"Other"}`)
		assert.Equal(t, http.StatusConflict, status)

		status, body = api.call(http.MethodPut, "/companies/ibm", `{"name":"IBM Corp","description":null}`)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, map[string]any{"code": "ibm", "name": "IBM Corp", "description": nil}, body)

		status, body = api.call(http.MethodDelete, "/companies/ibm", "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, map[string]any{"msg": "Deleted", "company": "IBM Corp"}, body)

		status, _ = api.call(http.MethodDelete, "/companies/ibm", "")
		assert.Equal(t, http.StatusNotFound, status)

		status, _ = api.call(http.MethodGet, "/companies/ibm", "")
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("missing name surfaces the driver error", func(t *testing.T) {
		testutil.Reset(t, db)

		status, body := api.call(http.MethodPost, "/companies", `{"code":"ibm"}`)
		require.Equal(t, http.StatusInternalServerError, status)
		errObj, ok := body["error"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "23502", errObj["Code"])
	})

	t.Run("invoice paid date transitions", func(t *testing.T) {
		testutil.Reset(t, db)
		status, _ := api.call(http.MethodPost, "/companies", `{"code":"ibm","name":"IBM","description":"Big blue."}`)
		require.Equal(t, http.StatusCreated, status)

		status, body := api.call(http.MethodPost, "/invoices", `{"comp_code":"ibm","amt":100}`)
		require.Equal(t, http.StatusOK, status)
		inv := body["invoice"].(map[string]any)
		assert.Equal(t, false, inv["paid"])
		assert.Nil(t, inv["paid_date"])
		assert.Equal(t, today, inv["add_date"])
		id := int(inv["id"].(float64))
		path := fmt.Sprintf("/invoices/%d", id)

		_, body = api.call(http.MethodPut, path, `{"amt":100,"paid":true}`)
		inv = body["invoice"].(map[string]any)
		assert.Equal(t, true, inv["paid"])
		assert.Equal(t, today, inv["paid_date"])

		// Backdate the payment so an unchanged date is observable.
		_, err := db.SQL().Exec(`UPDATE invoices SET paid_date = '2020-01-02' WHERE id = $1`, id)
		require.NoError(t, err)

		_, body = api.call(http.MethodPut, path, `{"amt":250,"paid":true}`)
		inv = body["invoice"].(map[string]any)
		assert.Equal(t, 250.0, inv["amt"])
		assert.Equal(t, "2020-01-02", inv["paid_date"])

		_, body = api.call(http.MethodPut, path, `{"amt":250,"paid":false}`)
		inv = body["invoice"].(map[string]any)
		assert.Equal(t, false, inv["paid"])
		assert.Nil(t, inv["paid_date"])

		status, body = api.call(http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, status)
		inv = body["invoice"].(map[string]any)
		assert.Equal(t, map[string]any{"code": "ibm", "name": "IBM", "description": "Big blue."}, inv["company"])

		status, body = api.call(http.MethodGet, "/invoices/company/ibm", "")
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, body["invoices"], 1)

		status, body = api.call(http.MethodDelete, path, "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, map[string]any{"msg": "Deleted", "invoice": "ibm"}, body)

		status, body = api.call(http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, fmt.Sprintf("No such invoice: %d", id), body["message"])

		status, _ = api.call(http.MethodGet, "/invoices/company/ibm", "")
		assert.Equal(t, http.StatusNotFound, status)
	})
}
