package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"bazario-backend/internal/models"
	"bazario-backend/internal/repository"
	"bazario-backend/internal/token"
)

type mockUsers struct {
	RegisterFunc  func(ctx context.Context, user *models.User) (bool, error)
	FindByUIDFunc func(ctx context.Context, uid string) (*models.User, error)
	IsAdminFunc   func(ctx context.Context, uid string) (bool, error)
}

func (m *mockUsers) Register(ctx context.Context, user *models.User) (bool, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, user)
	}
	return true, nil
}

func (m *mockUsers) FindByUID(ctx context.Context, uid string) (*models.User, error) {
	if m.FindByUIDFunc != nil {
		return m.FindByUIDFunc(ctx, uid)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUsers) IsAdmin(ctx context.Context, uid string) (bool, error) {
	if m.IsAdminFunc != nil {
		return m.IsAdminFunc(ctx, uid)
	}
	return false, nil
}

type mockProducts struct {
	ListPublicFunc   func(ctx context.Context, page, perPage int64) ([]models.Product, int64, error)
	FindByIDFunc     func(ctx context.Context, id string) (*models.Product, error)
	UpdateFieldsFunc func(ctx context.Context, id string, update models.ProductUpdate) error
}

func (m *mockProducts) ListPublic(ctx context.Context, page, perPage int64) ([]models.Product, int64, error) {
	if m.ListPublicFunc != nil {
		return m.ListPublicFunc(ctx, page, perPage)
	}
	return nil, 0, nil
}

func (m *mockProducts) ListBySeller(ctx context.Context, sellerUID string) ([]models.Product, error) {
	return nil, nil
}

func (m *mockProducts) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return nil, nil
}

func (m *mockProducts) FindByID(ctx context.Context, id string) (*models.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProducts) Create(ctx context.Context, product *models.Product) error { return nil }

func (m *mockProducts) UpdateFields(ctx context.Context, id string, update models.ProductUpdate) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, update)
	}
	return nil
}

func (m *mockProducts) Delete(ctx context.Context, id string) error                  { return nil }
func (m *mockProducts) SetVisibility(ctx context.Context, id string, v bool) error   { return nil }
func (m *mockProducts) Purchase(ctx context.Context, id string, qty int64) error     { return nil }
func (m *mockProducts) TopSelling(ctx context.Context, n int64) ([]models.Product, error) {
	return nil, nil
}
func (m *mockProducts) Recent(ctx context.Context, n int64) ([]models.Product, error) {
	return nil, nil
}
func (m *mockProducts) Count(ctx context.Context) (int64, error) { return 0, nil }

type mockOrders struct {
	UpdateStatusFunc func(ctx context.Context, id, status string) error
}

func (m *mockOrders) Create(ctx context.Context, order *models.Order) error { return nil }
func (m *mockOrders) FindByID(ctx context.Context, id string) (*models.Order, error) {
	return nil, repository.ErrNotFound
}
func (m *mockOrders) ListByUID(ctx context.Context, uid string) ([]models.Order, error) {
	return nil, nil
}
func (m *mockOrders) ListAll(ctx context.Context) ([]models.Order, error) { return nil, nil }
func (m *mockOrders) UpdateStatus(ctx context.Context, id, status string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}
func (m *mockOrders) MarkPaid(ctx context.Context, id, txn, addr string) error { return nil }
func (m *mockOrders) Count(ctx context.Context) (int64, error)                 { return 0, nil }

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGetJWTIssuesVerifiableToken(t *testing.T) {
	tokens := token.NewService("test-secret")
	h := &UserHandler{Tokens: tokens, Users: &mockUsers{}}

	r := gin.New()
	r.GET("/jwt", h.GetJWT)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/jwt?uid=u1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	uid, err := tokens.Verify(body.Token)
	if err != nil || uid != "u1" {
		t.Errorf("Verify = (%q, %v), want (u1, nil)", uid, err)
	}
}

func TestGetJWTRequiresUID(t *testing.T) {
	h := &UserHandler{Tokens: token.NewService("s"), Users: &mockUsers{}}
	r := gin.New()
	r.GET("/jwt", h.GetJWT)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/jwt", nil))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestRegisterUserIdempotent(t *testing.T) {
	calls := 0
	users := &mockUsers{RegisterFunc: func(ctx context.Context, user *models.User) (bool, error) {
		calls++
		if user.UID != "u1" {
			t.Errorf("registered uid = %q, want the path uid", user.UID)
		}
		return calls == 1, nil
	}}
	h := &UserHandler{Tokens: token.NewService("s"), Users: users}
	r := gin.New()
	r.PUT("/user/:uid", h.RegisterUser)

	body := `{"name":"Ada","email":"ada@example.com"}`

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("PUT", "/user/u1", bytes.NewBufferString(body)))
	if w.Code != http.StatusCreated {
		t.Errorf("first call status = %d, want 201", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("PUT", "/user/u1", bytes.NewBufferString(body)))
	if w.Code != http.StatusOK {
		t.Errorf("second call status = %d, want 200", w.Code)
	}
	var resp SuccessResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "user already exists" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestProductGetNotFound(t *testing.T) {
	h := &ProductHandler{Products: &mockProducts{}}
	r := gin.New()
	r.GET("/product/:id", h.Get)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/product/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != http.StatusNotFound {
		t.Errorf("envelope code = %d, want 404", resp.Code)
	}
}

func TestProductListPaginationParams(t *testing.T) {
	var gotPage, gotPerPage int64
	products := &mockProducts{ListPublicFunc: func(ctx context.Context, page, perPage int64) ([]models.Product, int64, error) {
		gotPage, gotPerPage = page, perPage
		return []models.Product{}, 0, nil
	}}
	h := &ProductHandler{Products: products}
	r := gin.New()
	r.GET("/products", h.List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/products?perPageView=20&currentPage=3", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if gotPage != 3 || gotPerPage != 20 {
		t.Errorf("repo called with (page=%d, perPage=%d), want (3, 20)", gotPage, gotPerPage)
	}

	// Out-of-range values fall back to defaults.
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/products?perPageView=9999&currentPage=-2", nil))
	if gotPage != 0 || gotPerPage != defaultPerPage {
		t.Errorf("repo called with (page=%d, perPage=%d), want defaults", gotPage, gotPerPage)
	}
}

func TestProductUpdateRejectsNegativePrice(t *testing.T) {
	called := false
	products := &mockProducts{UpdateFieldsFunc: func(ctx context.Context, id string, update models.ProductUpdate) error {
		called = true
		return nil
	}}
	h := &ProductHandler{Products: products}
	r := gin.New()
	r.PATCH("/product/:uid", h.Update)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("PATCH", "/product/u1?id=p1",
		bytes.NewBufferString(`{"price":-5}`)))

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if called {
		t.Error("repository touched despite validation failure")
	}
}

func TestOrderStatusClosedSet(t *testing.T) {
	called := false
	orders := &mockOrders{UpdateStatusFunc: func(ctx context.Context, id, status string) error {
		called = true
		if status != models.OrderStatusShipped {
			t.Errorf("status = %q, want shipped", status)
		}
		return nil
	}}
	h := &OrderHandler{Orders: orders}
	r := gin.New()
	r.PATCH("/order-status/:uid", h.UpdateStatus)

	// Free-text status is rejected before storage is touched.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("PATCH", "/order-status/u1?id=o1",
		bytes.NewBufferString(`{"status":"whatever"}`)))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if called {
		t.Error("repository touched for an unknown status")
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("PATCH", "/order-status/u1?id=o1",
		bytes.NewBufferString(`{"status":"shipped"}`)))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if !called {
		t.Error("repository not called for a valid status")
	}
}
