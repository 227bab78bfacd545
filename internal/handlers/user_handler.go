package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bazario-backend/internal/models"
	"bazario-backend/internal/repository"
	"bazario-backend/internal/token"
)

type UserHandler struct {
	Tokens *token.Service
	Users  repository.Users
}

// GET /jwt?uid=
func (h *UserHandler) GetJWT(c *gin.Context) {
	uid := c.Query("uid")
	if uid == "" {
		respondError(c, http.StatusBadRequest, "uid is required")
		return
	}
	t, err := h.Tokens.Issue(uid)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "could not issue token")
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": t})
}

// PUT /user/:uid — idempotent registration: the second call with the same
// uid stores nothing and says so.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		respondError(c, http.StatusBadRequest, "invalid input")
		return
	}
	user.UID = c.Param("uid")

	created, err := h.Users.Register(c.Request.Context(), &user)
	if err != nil {
		respondMappedError(c, err)
		return
	}
	if !created {
		c.JSON(http.StatusOK, SuccessResponse{Message: "user already exists"})
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GET /user/:uid
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.Users.FindByUID(c.Request.Context(), c.Param("uid"))
	if err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GET /user/admin/:uid — role probe, absent-safe.
func (h *UserHandler) IsAdmin(c *gin.Context) {
	ok, err := h.Users.IsAdmin(c.Request.Context(), c.Param("uid"))
	if err != nil {
		respondMappedError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": ok})
}
