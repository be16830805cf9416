package controllers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"store-management/models"
	"store-management/store"
)

// CustomerController handles customer-related requests. Customers are
// addressed by phone number, their natural key.
type CustomerController struct {
	Store  store.CustomerStore
	Logger *logrus.Logger
}

// NewCustomerController creates a new CustomerController.
func NewCustomerController(s store.Store, logger *logrus.Logger) *CustomerController {
	return &CustomerController{Store: s.Customers(), Logger: logger}
}

// GetCustomers retrieves all customers.
func (cc *CustomerController) GetCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	customers, err := cc.Store.List(ctx)
	if err != nil {
		respondWithStoreError(w, cc.Logger, err, "Customer")
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	respondWithJSON(w, http.StatusOK, customers)
}

// GetCustomerByPhone retrieves a single customer by phone number.
func (cc *CustomerController) GetCustomerByPhone(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	phone := mux.Vars(r)["phone"]
	customer, err := cc.Store.Get(ctx, phone)
	if err != nil {
		respondWithStoreError(w, cc.Logger, err, "Customer")
		return
	}
	respondWithJSON(w, http.StatusOK, customer)
}

// CreateCustomer handles adding a new customer.
func (cc *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var customer models.Customer
	if err := decodeBody(r, &customer); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	created, err := cc.Store.Create(ctx, &customer)
	if err != nil {
		respondWithStoreError(w, cc.Logger, err, "Customer")
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// UpdateCustomer handles updating an existing customer.
func (cc *CustomerController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	var update models.CustomerUpdate
	if err := decodeBody(r, &update); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	phone := mux.Vars(r)["phone"]
	updated, err := cc.Store.Update(ctx, phone, update)
	if err != nil {
		respondWithStoreError(w, cc.Logger, err, "Customer")
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

// DeleteCustomer handles deleting a customer.
func (cc *CustomerController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	phone := mux.Vars(r)["phone"]
	if err := cc.Store.Delete(ctx, phone); err != nil {
		respondWithStoreError(w, cc.Logger, err, "Customer")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Customer deleted successfully"})
}
