package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-management/client"
	"store-management/controllers"
	"store-management/models"
	"store-management/routes"
	"store-management/store"
)

// newBackend spins up the real route table on an in-memory store and
// returns a client pointed at it.
func newBackend(t *testing.T) *client.Client {
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
	return client.New(client.Config{BaseURL: srv.URL + "/api"})
}

func TestBaseURLResolution(t *testing.T) {
	t.Run("explicit value wins", func(t *testing.T) {
		t.Setenv("STORE_API_URL", "http://env.example/api")
		c := client.New(client.Config{BaseURL: "http://explicit.example/api/"})
		assert.Equal(t, "http://explicit.example/api", c.BaseURL())
	})

	t.Run("environment value next", func(t *testing.T) {
		t.Setenv("STORE_API_URL", "http://env.example/api")
		c := client.New(client.Config{})
		assert.Equal(t, "http://env.example/api", c.BaseURL())
	})

	t.Run("development default last", func(t *testing.T) {
		t.Setenv("STORE_API_URL", "")
		c := client.New(client.Config{})
		assert.Equal(t, client.DefaultBaseURL, c.BaseURL())
	})
}

func TestQueryStringOnlyWhenFiltered(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.URL.String())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	t.Cleanup(srv.Close)

	c := client.New(client.Config{BaseURL: srv.URL})
	ctx := context.Background()

	_, err := c.GetOrders(ctx, store.OrderFilter{})
	require.NoError(t, err)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err = c.GetOrders(ctx, store.OrderFilter{Status: "pending", StartDate: &start})
	require.NoError(t, err)

	_, err = c.GetProducts(ctx, store.ProductFilter{Category: "grains"})
	require.NoError(t, err)

	require.Len(t, seen, 3)
	assert.Equal(t, "/orders", seen[0])
	assert.Equal(t, "/orders?startDate=2024-03-01T00%3A00%3A00Z&status=pending", seen[1])
	assert.Equal(t, "/products?category=grains", seen[2])
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Employee not found"})
	}))
	t.Cleanup(srv.Close)

	c := client.New(client.Config{BaseURL: srv.URL})
	_, err := c.GetEmployeeByID(context.Background(), "E404")

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Employee not found", apiErr.Message)
}

func TestAPIErrorFallsBackToGenericMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	t.Cleanup(srv.Close)

	c := client.New(client.Config{BaseURL: srv.URL})
	_, err := c.GetCustomers(context.Background())

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "request failed with status 502", apiErr.Message)
}

func TestTransportErrorIsNotAPIError(t *testing.T) {
	c := client.New(client.Config{
		BaseURL:    "http://127.0.0.1:1", // nothing listens here
		HTTPClient: &http.Client{Timeout: 200 * time.Millisecond},
	})
	_, err := c.GetCustomers(context.Background())
	require.Error(t, err)

	var apiErr *client.APIError
	assert.False(t, errors.As(err, &apiErr), "transport failure should not be an APIError")
}

func TestEndToEndEmployeeAlertFlow(t *testing.T) {
	c := newBackend(t)
	ctx := context.Background()

	created, err := c.CreateEmployee(ctx, models.Employee{EmployeeID: "E1", Name: "Asha"})
	require.NoError(t, err)
	assert.Equal(t, "E1", created.EmployeeID)

	alert, err := c.CreateAlert(ctx, models.EmployeeAlert{
		EmployeeID: "E1",
		Alert:      models.Alert{AlertID: "A1", Message: "Restock aisle 3"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusPending, alert.Status)

	delivered := models.AlertStatusDelivered
	updated, err := c.UpdateAlert(ctx, "A1", models.AlertUpdate{Status: &delivered})
	require.NoError(t, err)
	assert.Equal(t, models.AlertStatusDelivered, updated.Status)

	require.NoError(t, c.DeleteEmployee(ctx, "E1"))

	_, err = c.GetAlertByID(ctx, "A1")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestClientCustomerRoundTrip(t *testing.T) {
	c := newBackend(t)
	ctx := context.Background()

	created, err := c.CreateCustomer(ctx, models.Customer{Phone: "555-0100", Name: "Priya"})
	require.NoError(t, err)

	fetched, err := c.GetCustomerByPhone(ctx, "555-0100")
	require.NoError(t, err)
	assert.Equal(t, created.Name, fetched.Name)
	assert.Equal(t, created.Phone, fetched.Phone)

	newName := "Priya K"
	updated, err := c.UpdateCustomer(ctx, "555-0100", models.CustomerUpdate{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Priya K", updated.Name)

	require.NoError(t, c.DeleteCustomer(ctx, "555-0100"))

	_, err = c.GetCustomerByPhone(ctx, "555-0100")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Customer not found", apiErr.Message)
}
