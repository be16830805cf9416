package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-management/models"
)

func seedOrder(t *testing.T, baseURL string, order map[string]interface{}) {
	t.Helper()
	resp := doJSON(t, http.MethodPost, baseURL+"/api/orders", order)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestOrderStatusFilter(t *testing.T) {
	srv, _ := newTestServer(t)

	seedOrder(t, srv.URL, map[string]interface{}{"orderId": "O1", "customerId": "555-0100", "status": "pending"})
	seedOrder(t, srv.URL, map[string]interface{}{"orderId": "O2", "customerId": "555-0100", "status": "delivered"})
	seedOrder(t, srv.URL, map[string]interface{}{"orderId": "O3", "customerId": "555-0200", "status": "pending"})

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/orders?status=pending", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var orders []models.Order
	decodeInto(t, resp, &orders)
	require.Len(t, orders, 2)
	assert.Equal(t, "O1", orders[0].OrderID)
	assert.Equal(t, "O3", orders[1].OrderID)
}

func TestOrderCustomerFilter(t *testing.T) {
	srv, _ := newTestServer(t)

	seedOrder(t, srv.URL, map[string]interface{}{"orderId": "O1", "customerId": "555-0100"})
	seedOrder(t, srv.URL, map[string]interface{}{"orderId": "O2", "customerId": "555-0200"})

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/orders?customerId=555-0200", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var orders []models.Order
	decodeInto(t, resp, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, "O2", orders[0].OrderID)
}

func TestOrderMalformedDateFilterYieldsEmptyList(t *testing.T) {
	srv, _ := newTestServer(t)

	seedOrder(t, srv.URL, map[string]interface{}{"orderId": "O1", "customerId": "555-0100"})

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/orders?startDate=notadate", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var orders []models.Order
	decodeInto(t, resp, &orders)
	assert.Empty(t, orders)
}

func TestOrderCreateDefaultsStatus(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/orders", map[string]interface{}{
		"orderId":    "O1",
		"customerId": "555-0100",
		"items": []map[string]interface{}{
			{"productId": "P1", "quantity": 2, "unitPrice": 3.5},
		},
		"totalAmount": 7.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.Order
	decodeInto(t, resp, &created)
	assert.Equal(t, models.OrderStatusPending, created.Status)
	require.Len(t, created.Items, 1)
	assert.Equal(t, 2, created.Items[0].Quantity)
}

func TestOrderStatusUpdate(t *testing.T) {
	srv, _ := newTestServer(t)

	seedOrder(t, srv.URL, map[string]interface{}{"orderId": "O1", "customerId": "555-0100"})

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/orders/O1", map[string]string{"status": "processing"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Order
	decodeInto(t, resp, &updated)
	assert.Equal(t, models.OrderStatusProcessing, updated.Status)

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/orders/O404", map[string]string{"status": "processing"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestOrdersEmptyListIsJSONArray(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/orders", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var orders []models.Order
	decodeInto(t, resp, &orders)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}
