package repository

import (
	"context"
	"errors"

	"bazario-backend/internal/models"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidID         = errors.New("invalid id")
	ErrDuplicate         = errors.New("already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
)

type Users interface {
	// Register inserts the user unless a document with the same uid
	// already exists. Returns false (and no error) on the duplicate.
	Register(ctx context.Context, user *models.User) (bool, error)
	FindByUID(ctx context.Context, uid string) (*models.User, error)
	IsAdmin(ctx context.Context, uid string) (bool, error)
}

type Products interface {
	ListPublic(ctx context.Context, page, perPage int64) ([]models.Product, int64, error)
	ListBySeller(ctx context.Context, sellerUID string) ([]models.Product, error)
	ListByCategory(ctx context.Context, category string) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	UpdateFields(ctx context.Context, id string, update models.ProductUpdate) error
	Delete(ctx context.Context, id string) error
	SetVisibility(ctx context.Context, id string, visible bool) error

	// Purchase applies one atomic conditional update: quantity -= qty where
	// quantity >= qty, totalSale += qty. ErrInsufficientStock when the
	// guard fails, ErrNotFound when the product does not exist.
	Purchase(ctx context.Context, id string, qty int64) error

	TopSelling(ctx context.Context, limit int64) ([]models.Product, error)
	Recent(ctx context.Context, limit int64) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
}

type Categories interface {
	List(ctx context.Context) ([]models.Category, error)
	Top(ctx context.Context, limit int64) ([]models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
}

type Sliders interface {
	List(ctx context.Context) ([]models.Slider, error)
	Create(ctx context.Context, slider *models.Slider) error
	Delete(ctx context.Context, id string) error
}

type Carts interface {
	// AddItem merges on insert: one line per (uid, product id), a second
	// add increments the stored quantity. Single atomic upsert.
	AddItem(ctx context.Context, item *models.CartItem) error
	ListByUID(ctx context.Context, uid string) ([]models.CartItem, error)
	DeleteItem(ctx context.Context, uid, itemID string) error
	ClearByUID(ctx context.Context, uid string) (int64, error)
}

type Orders interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	ListByUID(ctx context.Context, uid string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id, status string) error
	MarkPaid(ctx context.Context, id, transactionID, address string) error
	Count(ctx context.Context) (int64, error)
}

type Payments interface {
	Create(ctx context.Context, payment *models.Payment) error
	List(ctx context.Context, page, size int64) ([]models.Payment, int64, error)
	All(ctx context.Context) ([]models.Payment, error)
}

type Reviews interface {
	Create(ctx context.Context, review *models.Review) error
	ListByProduct(ctx context.Context, productID string) ([]models.Review, error)
}
