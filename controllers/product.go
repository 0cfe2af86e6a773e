package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"lumina-store/models"
	"lumina-store/stores"

	"github.com/gorilla/mux"
)

// ProductController handles catalog requests
type ProductController struct {
	Products stores.ProductStore
}

// NewProductController creates a new ProductController
func NewProductController(products stores.ProductStore) *ProductController {
	return &ProductController{
		Products: products,
	}
}

// CreateProduct handles adding a new product (Admin only)
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	err := json.NewDecoder(r.Body).Decode(&product)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id, err := pc.Products.Insert(ctx, product)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error creating product")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"insertedId": id})
}

// GetProducts retrieves the full catalog
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	products, err := pc.Products.List(ctx)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error fetching products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	respondJSON(w, http.StatusOK, products)
}

// GetProductByID retrieves a single product
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	product, err := pc.Products.FindByID(ctx, id)
	if errors.Is(err, stores.ErrNotFound) {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// UpdateProduct overwrites the mutable fields of a product
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var product models.Product
	err := json.NewDecoder(r.Body).Decode(&product)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	modified, err := pc.Products.Update(ctx, id, product)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"modifiedCount": modified})
}

// DeleteProduct removes a product (Admin only)
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	deleted, err := pc.Products.Delete(ctx, id)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid product ID")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}
