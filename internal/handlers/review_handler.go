package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bazario-backend/internal/models"
	"bazario-backend/internal/repository"
)

type ReviewHandler struct {
	Reviews repository.Reviews
}

// POST /review/:uid
func (h *ReviewHandler) Create(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		respondError(c, http.StatusBadRequest, "invalid input")
		return
	}
	if review.CustomerRating < 0 || review.CustomerRating > 5 {
		respondError(c, http.StatusBadRequest, "rating must be between 0 and 5")
		return
	}
	review.UID = c.Param("uid")

	if err := h.Reviews.Create(c.Request.Context(), &review); err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// GET /reviews/:productId
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	reviews, err := h.Reviews.ListByProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
