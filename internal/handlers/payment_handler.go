package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bazario-backend/internal/models"
	"bazario-backend/internal/repository"
	"bazario-backend/internal/services"
)

type PaymentHandler struct {
	Checkout *services.CheckoutService
	Payments repository.Payments
}

// POST /create-payment-intent/:uid?id=
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	orderID := c.Query("id")
	if orderID == "" {
		respondError(c, http.StatusBadRequest, "order id is required")
		return
	}

	secret, err := h.Checkout.CreateIntent(c.Request.Context(), c.Param("uid"), orderID)
	if err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

type paymentRequest struct {
	OrderID         string                  `json:"orderId" binding:"required"`
	Price           int64                   `json:"price" binding:"required"`
	TransactionID   string                  `json:"transactionId" binding:"required"`
	Address         string                  `json:"address"`
	OrderedProducts []models.OrderedProduct `json:"ordered_products" binding:"required"`
}

// POST /payments/:uid — records the capture and runs the inventory step.
func (h *PaymentHandler) Record(c *gin.Context) {
	var req paymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid input")
		return
	}
	for _, op := range req.OrderedProducts {
		if op.Quantity <= 0 {
			respondError(c, http.StatusBadRequest, "quantity must be positive")
			return
		}
	}

	payment := models.Payment{
		OrderID:         req.OrderID,
		Price:           req.Price,
		TransactionID:   req.TransactionID,
		Address:         req.Address,
		OrderedProducts: req.OrderedProducts,
	}

	result, err := h.Checkout.RecordPayment(c.Request.Context(), c.Param("uid"), &payment)
	if err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GET /sales-report/:uid?page=&size= — payments newest first, paginated.
func (h *PaymentHandler) SalesReport(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "0"), 10, 64)
	size, _ := strconv.ParseInt(c.DefaultQuery("size", "20"), 10, 64)
	if page < 0 {
		page = 0
	}
	if size < 1 || size > 100 {
		size = 20
	}

	payments, total, err := h.Payments.List(c.Request.Context(), page, size)
	if err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": payments, "total": total, "page": page, "size": size})
}

type DashboardHandler struct {
	Dashboard *services.DashboardService
}

// GET /dashboard-data/:uid
func (h *DashboardHandler) Get(c *gin.Context) {
	data, err := h.Dashboard.Build(c.Request.Context())
	if err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}
