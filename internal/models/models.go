package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type SellerInfo struct {
	SellerUID  string `bson:"seller_uid" json:"seller_uid"`
	SellerName string `bson:"seller_name,omitempty" json:"seller_name,omitempty"`
	Verified   bool   `bson:"verified" json:"verified"`
}

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UID        string             `bson:"uid" json:"uid"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Role       string             `bson:"role" json:"role"`
	SellerInfo *SellerInfo        `bson:"seller_info,omitempty" json:"seller_info,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

type ProductInfo struct {
	Name        string `bson:"name" json:"name" binding:"required"`
	Description string `bson:"description" json:"description"`
	Category    string `bson:"category" json:"category"`
	Image       string `bson:"image" json:"image"`
	Price       int64  `bson:"price" json:"price"`
	Quantity    int64  `bson:"quantity" json:"quantity"`
	TotalSale   int64  `bson:"totalSale" json:"totalSale"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProductInfo ProductInfo        `bson:"product_info" json:"product_info"`
	SellerInfo  SellerInfo         `bson:"seller_info" json:"seller_info"`
	Visibility  bool               `bson:"visibility" json:"visibility"`
	CreatedAt   time.Time          `bson:"createAt" json:"createAt"`
}

// ProductUpdate enumerates the replaceable fields of a product. Anything
// not listed here is preserved on PATCH.
type ProductUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	Image       *string `json:"image,omitempty"`
	Price       *int64  `json:"price,omitempty"`
	Quantity    *int64  `json:"quantity,omitempty"`
}

type Category struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name" json:"name" binding:"required"`
	Slug  string             `bson:"slug" json:"slug" binding:"required"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}

type Slider struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title     string             `bson:"title" json:"title"`
	Image     string             `bson:"image" json:"image" binding:"required"`
	Link      string             `bson:"link,omitempty" json:"link,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// CartProduct is the denormalized product snapshot stored on a cart line.
type CartProduct struct {
	ProductID string `bson:"id" json:"id" binding:"required"`
	Name      string `bson:"name" json:"name"`
	Image     string `bson:"image" json:"image"`
	Price     int64  `bson:"price" json:"price"`
	Quantity  int64  `bson:"quantity" json:"quantity" binding:"required"`
}

type CartItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UID         string             `bson:"uid" json:"uid"`
	ProductInfo CartProduct        `bson:"product_info" json:"product_info"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

const (
	OrderStatusPaymentPending = "payment pending"
	OrderStatusProcessing     = "processing"
	OrderStatusShipped        = "shipped"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

// ValidOrderStatus reports whether s belongs to the closed order-status set.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPaymentPending, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type OrderItem struct {
	ProductID string `bson:"product_id" json:"product_id"`
	Name      string `bson:"name" json:"name"`
	Price     int64  `bson:"price" json:"price"`
	Quantity  int64  `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerUID   string             `bson:"customer_uid" json:"customer_uid"`
	CustomerName  string             `bson:"customer_name,omitempty" json:"customer_name,omitempty"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	Items         []OrderItem        `bson:"items" json:"items"`
	SubTotal      int64              `bson:"subTotal" json:"subTotal"`
	OrderStatus   string             `bson:"order_status" json:"order_status"`
	PaymentStatus bool               `bson:"payment_status" json:"payment_status"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// OrderedProduct is one (product, quantity) pair adjusted by a payment.
type OrderedProduct struct {
	ProductID string `bson:"product_id" json:"product_id" binding:"required"`
	Quantity  int64  `bson:"quantity" json:"quantity" binding:"required"`
}

type Payment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	OrderID         string             `bson:"orderId" json:"orderId"`
	UID             string             `bson:"uid" json:"uid"`
	Price           int64              `bson:"price" json:"price"`
	TransactionID   string             `bson:"transactionId" json:"transactionId"`
	Address         string             `bson:"address" json:"address"`
	OrderedProducts []OrderedProduct   `bson:"ordered_products" json:"ordered_products"`
	CreatedAt       time.Time          `bson:"createAt" json:"createAt"`
}

type Review struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProductID      string             `bson:"product_id" json:"product_id" binding:"required"`
	UID            string             `bson:"uid" json:"uid"`
	Name           string             `bson:"name" json:"name"`
	CustomerRating float64            `bson:"customer_rating" json:"customer_rating"`
	Comment        string             `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}
