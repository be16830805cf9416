package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"store-management/controllers"
	"store-management/routes"
	"store-management/store"
)

// newTestServer wires the full route table onto a fresh in-memory
// store, the same composition main uses minus CORS and Mongo.
func newTestServer(t *testing.T) (*httptest.Server, *store.Memory) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	mem := store.NewMemory()
	router := mux.NewRouter()
	routes.RegisterRoutes(router,
		controllers.NewCustomerController(mem, logger),
		controllers.NewProductController(mem, logger),
		controllers.NewOrderController(mem, logger),
		controllers.NewEmployeeController(mem, logger),
		controllers.NewAlertController(mem, logger, nil),
		controllers.NewUserController(mem, logger),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, mem
}

func doJSON(t *testing.T, method, url string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}
