package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bazario-backend/internal/repository"
	"bazario-backend/internal/services"
)

// ErrorResponse is the envelope every failure path renders: code mirrors
// the HTTP status.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Code: status, Message: message})
}

// respondMappedError translates repository/service sentinels into the
// envelope; anything unrecognized is an upstream failure.
func respondMappedError(c *gin.Context, err error) {
	switch err {
	case repository.ErrNotFound:
		respondError(c, http.StatusNotFound, "not found")
	case repository.ErrInvalidID:
		respondError(c, http.StatusBadRequest, "invalid id")
	case repository.ErrDuplicate:
		respondError(c, http.StatusConflict, "already exists")
	case repository.ErrInsufficientStock:
		respondError(c, http.StatusConflict, "insufficient stock")
	case services.ErrNotOwner:
		respondError(c, http.StatusForbidden, "forbidden access")
	case services.ErrEmptyOrder:
		respondError(c, http.StatusBadRequest, "order has no items")
	case services.ErrAlreadyPaid:
		respondError(c, http.StatusConflict, "order already paid")
	default:
		respondError(c, http.StatusInternalServerError, "upstream failure")
	}
}
