package services

import (
	"context"
	"errors"
	"log"

	"bazario-backend/internal/metrics"
	"bazario-backend/internal/models"
	"bazario-backend/internal/payments"
	"bazario-backend/internal/repository"
)

// ErrNotOwner marks an order that exists but belongs to a different uid.
var ErrNotOwner = errors.New("order not owned by caller")

// ErrEmptyOrder rejects a checkout with no line items.
var ErrEmptyOrder = errors.New("order has no items")

// ErrAlreadyPaid rejects a second capture for an order that is already
// paid; resubmitting a payment record must not duplicate the Payment or
// decrement inventory again.
var ErrAlreadyPaid = errors.New("order already paid")

// CheckoutService owns the order/payment workflow: cart → order, payment
// intent, capture recording, and the per-product inventory adjustment.
//
// Consistency policy: the financial capture is the source of truth. The
// payment record and the order update persist first; the inventory step is
// a sequence of independent atomic decrements that are safe to retry and
// can never drive stock negative. Nothing is rolled back — a product that
// fails its stock guard is reported as back-ordered instead.
type CheckoutService struct {
	orders   repository.Orders
	payments repository.Payments
	products repository.Products
	carts    repository.Carts
	gateway  payments.Gateway
	metrics  *metrics.AppMetrics
}

func NewCheckoutService(
	orders repository.Orders,
	paymentRepo repository.Payments,
	products repository.Products,
	carts repository.Carts,
	gateway payments.Gateway,
	m *metrics.AppMetrics,
) *CheckoutService {
	return &CheckoutService{
		orders:   orders,
		payments: paymentRepo,
		products: products,
		carts:    carts,
		gateway:  gateway,
		metrics:  m,
	}
}

type ConfirmResult struct {
	Order       *models.Order `json:"order"`
	CartCleared bool          `json:"cartCleared"`
}

// ConfirmOrder inserts the order and then clears the customer's cart.
// The two writes are not transactional: when the cart clear fails the
// order still stands (it is already durable) and the result says so, so
// the client can retry the idempotent clear.
func (s *CheckoutService) ConfirmOrder(ctx context.Context, uid string, order *models.Order) (*ConfirmResult, error) {
	if len(order.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return nil, ErrEmptyOrder
		}
	}

	// The owner is the authenticated uid, never the payload's.
	order.CustomerUID = uid
	order.OrderStatus = models.OrderStatusPaymentPending
	order.PaymentStatus = false
	order.TransactionID = ""

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	s.metrics.RecordOrder(ctx)

	cleared := true
	if _, err := s.carts.ClearByUID(ctx, uid); err != nil {
		log.Printf("confirm-order: order %s created but cart clear failed for uid %s: %v",
			order.ID.Hex(), uid, err)
		cleared = false
	}

	return &ConfirmResult{Order: order, CartCleared: cleared}, nil
}

// CreateIntent stages a gateway authorization for the order's subtotal.
// The order must exist and belong to the caller.
func (s *CheckoutService) CreateIntent(ctx context.Context, uid, orderID string) (string, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return "", err
	}
	if order.CustomerUID != uid {
		return "", ErrNotOwner
	}
	return s.gateway.CreateIntent(ctx, order.SubTotal, "usd")
}

type BackOrder struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Reason    string `json:"reason"`
}

type PaymentResult struct {
	Payment     *models.Payment `json:"payment"`
	BackOrdered []BackOrder     `json:"backOrdered,omitempty"`
}

// RecordPayment persists the capture and applies the compensating updates:
// order marked paid/processing, then one atomic conditional decrement per
// purchased product. Ownership of the referenced order is re-checked here
// before any write; the generic guard on the route is not enough because
// the order id arrives in the body. An order that is already paid is
// rejected outright, so a resubmitted record cannot double-capture; the
// unique transactionId index backstops the check against concurrent
// duplicates.
func (s *CheckoutService) RecordPayment(ctx context.Context, uid string, payment *models.Payment) (*PaymentResult, error) {
	order, err := s.orders.FindByID(ctx, payment.OrderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerUID != uid {
		return nil, ErrNotOwner
	}
	if order.PaymentStatus {
		return nil, ErrAlreadyPaid
	}

	payment.UID = uid
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}
	if err := s.orders.MarkPaid(ctx, payment.OrderID, payment.TransactionID, payment.Address); err != nil {
		// The capture is already durable; surface the failure rather than
		// pretend the order moved.
		return nil, err
	}

	result := &PaymentResult{Payment: payment}
	for _, op := range payment.OrderedProducts {
		if err := s.products.Purchase(ctx, op.ProductID, op.Quantity); err != nil {
			reason := "update failed"
			switch err {
			case repository.ErrInsufficientStock:
				reason = "insufficient stock"
			case repository.ErrNotFound, repository.ErrInvalidID:
				reason = "product not found"
			default:
				log.Printf("payments: inventory update failed for product %s: %v", op.ProductID, err)
			}
			result.BackOrdered = append(result.BackOrdered, BackOrder{
				ProductID: op.ProductID,
				Quantity:  op.Quantity,
				Reason:    reason,
			})
		}
	}

	s.metrics.RecordPayment(ctx, payment.Price)
	return result, nil
}
