package services

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bazario-backend/internal/models"
	"bazario-backend/internal/repository"
)

// In-memory repository fakes. memProducts mirrors the production contract
// that matters here: Purchase is a single guarded decrement under a lock,
// so concurrent callers cannot lose updates.

type memProducts struct {
	mu       sync.Mutex
	products map[string]*models.Product
}

func newMemProducts() *memProducts {
	return &memProducts{products: make(map[string]*models.Product)}
}

func (m *memProducts) add(p models.Product) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	m.products[p.ID.Hex()] = &p
	return p.ID.Hex()
}

func (m *memProducts) get(id string) models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.products[id]
}

func (m *memProducts) Purchase(ctx context.Context, id string, qty int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return repository.ErrNotFound
	}
	if p.ProductInfo.Quantity < qty {
		return repository.ErrInsufficientStock
	}
	p.ProductInfo.Quantity -= qty
	p.ProductInfo.TotalSale += qty
	return nil
}

func (m *memProducts) all() []models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out
}

func (m *memProducts) ListPublic(ctx context.Context, page, perPage int64) ([]models.Product, int64, error) {
	products := m.all()
	return products, int64(len(products)), nil
}

func (m *memProducts) ListBySeller(ctx context.Context, sellerUID string) ([]models.Product, error) {
	return m.all(), nil
}

func (m *memProducts) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return m.all(), nil
}

func (m *memProducts) FindByID(ctx context.Context, id string) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *memProducts) Create(ctx context.Context, product *models.Product) error {
	m.add(*product)
	return nil
}

func (m *memProducts) UpdateFields(ctx context.Context, id string, update models.ProductUpdate) error {
	return nil
}

func (m *memProducts) Delete(ctx context.Context, id string) error { return nil }

func (m *memProducts) SetVisibility(ctx context.Context, id string, visible bool) error {
	return nil
}

func (m *memProducts) TopSelling(ctx context.Context, limit int64) ([]models.Product, error) {
	products := m.all()
	sort.Slice(products, func(i, j int) bool {
		return products[i].ProductInfo.TotalSale > products[j].ProductInfo.TotalSale
	})
	if int64(len(products)) > limit {
		products = products[:limit]
	}
	return products, nil
}

func (m *memProducts) Recent(ctx context.Context, limit int64) ([]models.Product, error) {
	products := m.all()
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})
	if int64(len(products)) > limit {
		products = products[:limit]
	}
	return products, nil
}

func (m *memProducts) Count(ctx context.Context) (int64, error) {
	return int64(len(m.all())), nil
}

type memOrders struct {
	mu     sync.Mutex
	orders map[string]*models.Order
}

func newMemOrders() *memOrders {
	return &memOrders{orders: make(map[string]*models.Order)}
}

func (m *memOrders) Create(ctx context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order.ID = primitive.NewObjectID()
	copied := *order
	m.orders[order.ID.Hex()] = &copied
	return nil
}

func (m *memOrders) FindByID(ctx context.Context, id string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *o
	return &copied, nil
}

func (m *memOrders) ListByUID(ctx context.Context, uid string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Order, 0)
	for _, o := range m.orders {
		if o.CustomerUID == uid {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *memOrders) ListAll(ctx context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Order, 0)
	for _, o := range m.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (m *memOrders) UpdateStatus(ctx context.Context, id, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.OrderStatus = status
	return nil
}

func (m *memOrders) MarkPaid(ctx context.Context, id, transactionID, address string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return repository.ErrNotFound
	}
	o.PaymentStatus = true
	o.OrderStatus = models.OrderStatusProcessing
	o.TransactionID = transactionID
	o.Address = address
	return nil
}

func (m *memOrders) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.orders)), nil
}

type memPayments struct {
	mu       sync.Mutex
	payments []models.Payment
}

func (m *memPayments) Create(ctx context.Context, payment *models.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	payment.ID = primitive.NewObjectID()
	m.payments = append(m.payments, *payment)
	return nil
}

func (m *memPayments) List(ctx context.Context, page, size int64) ([]models.Payment, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Payment(nil), m.payments...), int64(len(m.payments)), nil
}

func (m *memPayments) All(ctx context.Context) ([]models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Payment(nil), m.payments...), nil
}

type memCarts struct {
	mu    sync.Mutex
	items []models.CartItem
}

func (m *memCarts) AddItem(ctx context.Context, item *models.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].UID == item.UID && m.items[i].ProductInfo.ProductID == item.ProductInfo.ProductID {
			m.items[i].ProductInfo.Quantity += item.ProductInfo.Quantity
			return nil
		}
	}
	item.ID = primitive.NewObjectID()
	m.items = append(m.items, *item)
	return nil
}

func (m *memCarts) ListByUID(ctx context.Context, uid string) ([]models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.CartItem, 0)
	for _, it := range m.items {
		if it.UID == uid {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memCarts) DeleteItem(ctx context.Context, uid, itemID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.UID == uid && it.ID.Hex() == itemID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memCarts) ClearByUID(ctx context.Context, uid string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.items[:0]
	var removed int64
	for _, it := range m.items {
		if it.UID == uid {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	m.items = kept
	return removed, nil
}

type fakeGateway struct {
	CreateIntentFunc func(ctx context.Context, amount int64, currency string) (string, error)
}

func (f *fakeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	if f.CreateIntentFunc != nil {
		return f.CreateIntentFunc(ctx, amount, currency)
	}
	return "cs_test_secret", nil
}
