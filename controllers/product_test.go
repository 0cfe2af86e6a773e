package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"lumina-store/models"

	"github.com/gorilla/mux"
)

func seedProduct(t *testing.T, pc *ProductController, body string) {
	t.Helper()
	req := httptest.NewRequest("POST", "/clothes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	pc.CreateProduct(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Failed to seed product: %d %s", rec.Code, rec.Body.String())
	}
}

func TestGetProductsIdempotent(t *testing.T) {
	store := &fakeProductStore{}
	pc := NewProductController(store)
	seedProduct(t, pc, `{"short_description":"shirt","new_price":20,"old_price":25,"category":"men","image":"shirt.png"}`)
	seedProduct(t, pc, `{"short_description":"dress","new_price":40,"old_price":50,"category":"women","image":"dress.png"}`)

	fetch := func() []models.Product {
		rec := httptest.NewRecorder()
		pc.GetProducts(rec, httptest.NewRequest("GET", "/clothes", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		var products []models.Product
		if err := json.NewDecoder(rec.Body).Decode(&products); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		return products
	}

	first := fetch()
	second := fetch()
	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical catalog across repeated reads with no mutations")
	}
	if len(first) != 2 {
		t.Errorf("Expected two products, got %d", len(first))
	}
}

func TestGetProductByIDNotFound(t *testing.T) {
	pc := NewProductController(&fakeProductStore{})

	req := mux.SetURLVars(httptest.NewRequest("GET", "/clothes/category/x", nil), map[string]string{"id": "000000000000000000000001"})
	rec := httptest.NewRecorder()
	pc.GetProductByID(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for absent product, got %d", rec.Code)
	}
}

func TestUpdateProduct(t *testing.T) {
	store := &fakeProductStore{}
	pc := NewProductController(store)
	seedProduct(t, pc, `{"short_description":"shirt","new_price":20,"old_price":25,"category":"men","image":"shirt.png"}`)
	id := store.products[0].ID.Hex()

	body := `{"short_description":"shirt v2","new_price":18,"old_price":20,"category":"men","image":"shirt2.png"}`
	req := mux.SetURLVars(httptest.NewRequest("PATCH", "/clothes/category/"+id, strings.NewReader(body)), map[string]string{"id": id})
	rec := httptest.NewRecorder()
	pc.UpdateProduct(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if store.products[0].ShortDescription != "shirt v2" || store.products[0].NewPrice != 18 {
		t.Errorf("Expected updated fields, got %+v", store.products[0])
	}
}

func TestDeleteProduct(t *testing.T) {
	store := &fakeProductStore{}
	pc := NewProductController(store)
	seedProduct(t, pc, `{"short_description":"shirt","new_price":20,"old_price":25,"category":"men","image":"shirt.png"}`)
	id := store.products[0].ID.Hex()

	req := mux.SetURLVars(httptest.NewRequest("DELETE", "/clothes/"+id, nil), map[string]string{"id": id})
	rec := httptest.NewRecorder()
	pc.DeleteProduct(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if len(store.products) != 0 {
		t.Errorf("Expected product to be deleted, %d remain", len(store.products))
	}
}
