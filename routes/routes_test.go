package routes_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-management/controllers"
	"store-management/routes"
	"store-management/store"
)

func newRouter(t *testing.T) *mux.Router {
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
	return router
}

func TestUnmountedPathReturnsRouteNotFound(t *testing.T) {
	router := newRouter(t)

	for _, path := range []string{"/api/unknown", "/nowhere", "/api"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "Route not found", body["message"])
		})
	}
}

func TestUnsupportedMethodReturnsRouteNotFound(t *testing.T) {
	router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/customers", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Route not found", body["message"])
}

func TestAllResourcesMounted(t *testing.T) {
	router := newRouter(t)

	for _, path := range []string{"/api/customers", "/api/products", "/api/orders", "/api/employees", "/api/alerts"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
