package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bazario-backend/internal/models"
	"bazario-backend/internal/repository"
)

type CartHandler struct {
	Carts repository.Carts
}

// POST /add-to-cart/:uid — merge-on-insert; a second add of the same
// product increments the stored quantity.
func (h *CartHandler) Add(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		respondError(c, http.StatusBadRequest, "invalid input")
		return
	}
	if item.ProductInfo.Quantity <= 0 {
		respondError(c, http.StatusBadRequest, "quantity must be positive")
		return
	}
	item.UID = c.Param("uid")

	if err := h.Carts.AddItem(c.Request.Context(), &item); err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "added to cart"})
}

// GET /get-cart/:uid
func (h *CartHandler) Get(c *gin.Context) {
	items, err := h.Carts.ListByUID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// DELETE /cart-item/:uid?id=
func (h *CartHandler) DeleteItem(c *gin.Context) {
	if err := h.Carts.DeleteItem(c.Request.Context(), c.Param("uid"), c.Query("id")); err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "cart item deleted"})
}
