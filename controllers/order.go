package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"lumina-store/middleware"
	"lumina-store/models"
	"lumina-store/stores"

	"github.com/gorilla/mux"
)

// OrderController handles order placement and reconciliation. Placement for
// the same (product_id, email) pair is serialized through a keyed mutex so
// two identical concurrent requests cannot both observe "absent" and insert
// duplicate records.
type OrderController struct {
	Orders stores.OrderStore

	mu   sync.Mutex
	keys map[string]*sync.Mutex
}

// NewOrderController creates a new OrderController
func NewOrderController(orders stores.OrderStore) *OrderController {
	return &OrderController{
		Orders: orders,
		keys:   make(map[string]*sync.Mutex),
	}
}

func (oc *OrderController) keyLock(productID, email string) *sync.Mutex {
	oc.mu.Lock()
	defer oc.mu.Unlock()
	key := productID + "\x00" + email
	lock, ok := oc.keys[key]
	if !ok {
		lock = &sync.Mutex{}
		oc.keys[key] = lock
	}
	return lock
}

// PlaceOrder merges a placement into an existing open order or inserts a new
// one. An existing (product_id, email) order gains quantity 1; otherwise the
// submitted quantity is stored, defaulting to 1.
func (oc *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var item models.Order
	err := json.NewDecoder(r.Body).Decode(&item)
	if err != nil || item.ProductID == "" || item.Email == "" {
		respondError(w, http.StatusBadRequest, "invalid input")
		return
	}

	lock := oc.keyLock(item.ProductID, item.Email)
	lock.Lock()
	defer lock.Unlock()

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	existing, err := oc.Orders.FindOpen(ctx, item.ProductID, item.Email)
	if err != nil && !errors.Is(err, stores.ErrNotFound) {
		respondError(w, http.StatusInternalServerError, "database error")
		return
	}

	if existing != nil {
		modified, err := oc.Orders.IncrementQuantity(ctx, existing.ID)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "error updating order")
			return
		}
		respondJSON(w, http.StatusOK, map[string]int64{"matchedCount": 1, "modifiedCount": modified})
		return
	}

	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	id, err := oc.Orders.Insert(ctx, item)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error creating order")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"insertedId": id})
}

// GetOrders lists the caller's open orders. The email query must match the
// token email.
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		respondJSON(w, http.StatusOK, []models.Order{})
		return
	}
	if email != claims.Email {
		respondError(w, http.StatusForbidden, "forbidden access")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	orders, err := oc.Orders.ListByEmail(ctx, email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "error fetching orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	respondJSON(w, http.StatusOK, orders)
}

// DeleteOrder removes a single order
func (oc *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	deleted, err := oc.Orders.Delete(ctx, id)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid order ID")
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}
