package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bazario-backend/internal/models"
	"bazario-backend/internal/repository"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

type ProductHandler struct {
	Products repository.Products
}

type ProductListResponse struct {
	Products      []models.Product `json:"products"`
	ProductsCount int64            `json:"productsCount"`
}

// GET /products?perPageView=&currentPage= — public listing, visible only.
func (h *ProductHandler) List(c *gin.Context) {
	perPage, _ := strconv.ParseInt(c.DefaultQuery("perPageView", strconv.Itoa(defaultPerPage)), 10, 64)
	page, _ := strconv.ParseInt(c.DefaultQuery("currentPage", "0"), 10, 64)
	if perPage < 1 || perPage > maxPerPage {
		perPage = defaultPerPage
	}
	if page < 0 {
		page = 0
	}

	products, total, err := h.Products.ListPublic(c.Request.Context(), page, perPage)
	if err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, ProductListResponse{Products: products, ProductsCount: total})
}

// GET /product/:id
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.Products.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// GET /products/seller/:uid — includes hidden items.
func (h *ProductHandler) ListBySeller(c *gin.Context) {
	products, err := h.Products.ListBySeller(c.Request.Context(), c.Param("uid"))
	if err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// POST /product?uid=
func (h *ProductHandler) Create(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		respondError(c, http.StatusBadRequest, "invalid input")
		return
	}
	if product.ProductInfo.Price < 0 || product.ProductInfo.Quantity < 0 {
		respondError(c, http.StatusBadRequest, "price and quantity must be non-negative")
		return
	}
	product.ProductInfo.TotalSale = 0
	if product.SellerInfo.SellerUID == "" {
		product.SellerInfo.SellerUID = c.Query("uid")
	}

	if err := h.Products.Create(c.Request.Context(), &product); err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

// PATCH /product/:uid?id= — partial merge of enumerated fields only.
func (h *ProductHandler) Update(c *gin.Context) {
	var update models.ProductUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondError(c, http.StatusBadRequest, "invalid input")
		return
	}
	if update.Price != nil && *update.Price < 0 {
		respondError(c, http.StatusBadRequest, "price must be non-negative")
		return
	}
	if update.Quantity != nil && *update.Quantity < 0 {
		respondError(c, http.StatusBadRequest, "quantity must be non-negative")
		return
	}

	if err := h.Products.UpdateFields(c.Request.Context(), c.Query("id"), update); err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "product updated"})
}

// DELETE /product/:uid?id=
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.Products.Delete(c.Request.Context(), c.Query("id")); err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "product deleted"})
}

// PATCH /product-visibility/:uid?id=
func (h *ProductHandler) SetVisibility(c *gin.Context) {
	var req struct {
		Visibility *bool `json:"visibility" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid input")
		return
	}

	if err := h.Products.SetVisibility(c.Request.Context(), c.Query("id"), *req.Visibility); err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Message: "visibility updated"})
}
