package controllers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"store-management/models"
	"store-management/store"
)

// ProductController handles product-related requests.
type ProductController struct {
	Store  store.ProductStore
	Logger *logrus.Logger
}

// NewProductController creates a new ProductController.
func NewProductController(s store.Store, logger *logrus.Logger) *ProductController {
	return &ProductController{Store: s.Products(), Logger: logger}
}

// GetProducts retrieves products, optionally filtered by name and category.
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	query := r.URL.Query()
	filter := store.ProductFilter{
		Name:     query.Get("name"),
		Category: query.Get("category"),
	}

	products, err := pc.Store.List(ctx, filter)
	if err != nil {
		respondWithStoreError(w, pc.Logger, err, "Product")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	respondWithJSON(w, http.StatusOK, products)
}

// GetProductByID retrieves a single product by product ID.
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	product, err := pc.Store.Get(ctx, id)
	if err != nil {
		respondWithStoreError(w, pc.Logger, err, "Product")
		return
	}
	respondWithJSON(w, http.StatusOK, product)
}

// CreateProduct handles adding a new product.
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := decodeBody(r, &product); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	created, err := pc.Store.Create(ctx, &product)
	if err != nil {
		respondWithStoreError(w, pc.Logger, err, "Product")
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// UpdateProduct handles updating a product.
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var update models.ProductUpdate
	if err := decodeBody(r, &update); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	updated, err := pc.Store.Update(ctx, id, update)
	if err != nil {
		respondWithStoreError(w, pc.Logger, err, "Product")
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

// DeleteProduct handles deleting a product.
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	if err := pc.Store.Delete(ctx, id); err != nil {
		respondWithStoreError(w, pc.Logger, err, "Product")
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}
