// controllers/order.go
package controllers

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"store-management/models"
	"store-management/store"
)

// OrderController handles order-related requests.
type OrderController struct {
	Store  store.OrderStore
	Logger *logrus.Logger
}

// NewOrderController creates a new OrderController.
func NewOrderController(s store.Store, logger *logrus.Logger) *OrderController {
	return &OrderController{Store: s.Orders(), Logger: logger}
}

// GetOrders retrieves orders, optionally filtered by customer, status
// and creation date range. A malformed date filter yields an empty
// result set rather than an error.
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	filter, ok := orderFilterFromQuery(r.URL.Query())
	if !ok {
		respondWithJSON(w, http.StatusOK, []models.Order{})
		return
	}

	orders, err := oc.Store.List(ctx, filter)
	if err != nil {
		respondWithStoreError(w, oc.Logger, err, "Order")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	respondWithJSON(w, http.StatusOK, orders)
}

func orderFilterFromQuery(query url.Values) (store.OrderFilter, bool) {
	filter := store.OrderFilter{
		CustomerID: query.Get("customerId"),
		Status:     query.Get("status"),
	}
	if raw := query.Get("startDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return store.OrderFilter{}, false
		}
		filter.StartDate = &t
	}
	if raw := query.Get("endDate"); raw != "" {
		t, err := parseDate(raw)
		if err != nil {
			return store.OrderFilter{}, false
		}
		filter.EndDate = &t
	}
	return filter, true
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// GetOrderByID retrieves a single order by order ID.
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	order, err := oc.Store.Get(ctx, id)
	if err != nil {
		respondWithStoreError(w, oc.Logger, err, "Order")
		return
	}
	respondWithJSON(w, http.StatusOK, order)
}

// CreateOrder handles placing a new order.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := decodeBody(r, &order); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	created, err := oc.Store.Create(ctx, &order)
	if err != nil {
		respondWithStoreError(w, oc.Logger, err, "Order")
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// UpdateOrder handles updating an order, typically its status.
func (oc *OrderController) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var update models.OrderUpdate
	if err := decodeBody(r, &update); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	updated, err := oc.Store.Update(ctx, id, update)
	if err != nil {
		respondWithStoreError(w, oc.Logger, err, "Order")
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

// DeleteOrder handles deleting an order.
func (oc *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	if err := oc.Store.Delete(ctx, id); err != nil {
		respondWithStoreError(w, oc.Logger, err, "Order")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}
