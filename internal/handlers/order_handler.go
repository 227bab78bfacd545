package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bazario-backend/internal/models"
	"bazario-backend/internal/repository"
	"bazario-backend/internal/services"
)

type OrderHandler struct {
	Orders   repository.Orders
	Checkout *services.CheckoutService
}

// POST /confirm-order/:uid — order insert plus cart clear.
func (h *OrderHandler) Confirm(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		respondError(c, http.StatusBadRequest, "invalid input")
		return
	}

	result, err := h.Checkout.ConfirmOrder(c.Request.Context(), c.Param("uid"), &order)
	if err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GET /orders/:uid — caller's orders, newest first.
func (h *OrderHandler) ListMine(c *gin.Context) {
	orders, err := h.Orders.ListByUID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GET /orders/all/:uid — admin view.
func (h *OrderHandler) ListAll(c *gin.Context) {
	orders, err := h.Orders.ListAll(c.Request.Context())
	if err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// PATCH /order-status/:uid?id= — closed status set; unknown values are
// rejected before storage is touched.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid input")
		return
	}
	if !models.ValidOrderStatus(req.Status) {
		respondError(c, http.StatusBadRequest, "unknown order status")
		return
	}

	if err := h.Orders.UpdateStatus(c.Request.Context(), c.Query("id"), req.Status); err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "order status updated"})
}
