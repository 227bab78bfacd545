package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bazario-backend/internal/models"
	"bazario-backend/internal/repository"
)

type CategoryHandler struct {
	Categories repository.Categories
	Products   repository.Products
}

// GET /categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.Categories.List(c.Request.Context())
	if err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GET /categories/top — capped read of the first 3, not a ranking.
func (h *CategoryHandler) Top(c *gin.Context) {
	categories, err := h.Categories.Top(c.Request.Context(), 3)
	if err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GET /category/:slug — the category plus its visible products.
func (h *CategoryHandler) BySlug(c *gin.Context) {
	category, err := h.Categories.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondMappedError(c, err)
		return
	}
	products, err := h.Products.ListByCategory(c.Request.Context(), category.Slug)
	if err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category, "products": products})
}

// POST /category/:uid
func (h *CategoryHandler) Create(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		respondError(c, http.StatusBadRequest, "invalid input")
		return
	}
	if err := h.Categories.Create(c.Request.Context(), &category); err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

type SliderHandler struct {
	Sliders repository.Sliders
}

// GET /sliders
func (h *SliderHandler) List(c *gin.Context) {
	sliders, err := h.Sliders.List(c.Request.Context())
	if err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, sliders)
}

// POST /slider/:uid
func (h *SliderHandler) Create(c *gin.Context) {
	var slider models.Slider
	if err := c.ShouldBindJSON(&slider); err != nil {
		respondError(c, http.StatusBadRequest, "invalid input")
		return
	}
	if err := h.Sliders.Create(c.Request.Context(), &slider); err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, slider)
}

// DELETE /slider/:uid?id=
func (h *SliderHandler) Delete(c *gin.Context) {
	if err := h.Sliders.Delete(c.Request.Context(), c.Query("id")); err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "slider deleted"})
}
