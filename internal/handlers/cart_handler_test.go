package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"bazario-backend/internal/models"
	"bazario-backend/internal/repository"
)

type mockCarts struct {
	AddItemFunc func(ctx context.Context, item *models.CartItem) error
}

func (m *mockCarts) AddItem(ctx context.Context, item *models.CartItem) error {
	if m.AddItemFunc != nil {
		return m.AddItemFunc(ctx, item)
	}
	return nil
}

func (m *mockCarts) ListByUID(ctx context.Context, uid string) ([]models.CartItem, error) {
	return nil, nil
}

func (m *mockCarts) DeleteItem(ctx context.Context, uid, itemID string) error {
	return repository.ErrNotFound
}

func (m *mockCarts) ClearByUID(ctx context.Context, uid string) (int64, error) { return 0, nil }

func TestCartAddForcesOwnerUID(t *testing.T) {
	var got *models.CartItem
	carts := &mockCarts{AddItemFunc: func(ctx context.Context, item *models.CartItem) error {
		got = item
		return nil
	}}
	h := &CartHandler{Carts: carts}
	r := gin.New()
	r.POST("/add-to-cart/:uid", h.Add)

	body := `{"uid":"spoofed","product_info":{"id":"p1","name":"chair","price":100,"quantity":2}}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/add-to-cart/u1", bytes.NewBufferString(body)))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if got == nil {
		t.Fatal("repository never called")
	}
	if got.UID != "u1" {
		t.Errorf("stored uid = %q, want the path uid", got.UID)
	}
	if got.ProductInfo.Quantity != 2 {
		t.Errorf("quantity = %d, want 2", got.ProductInfo.Quantity)
	}
}

func TestCartAddRejectsNonPositiveQuantity(t *testing.T) {
	called := false
	carts := &mockCarts{AddItemFunc: func(ctx context.Context, item *models.CartItem) error {
		called = true
		return nil
	}}
	h := &CartHandler{Carts: carts}
	r := gin.New()
	r.POST("/add-to-cart/:uid", h.Add)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/add-to-cart/u1",
		bytes.NewBufferString(`{"product_info":{"id":"p1","quantity":-1}}`)))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if called {
		t.Error("repository touched despite validation failure")
	}
}
