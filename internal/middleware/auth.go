package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bazario-backend/internal/repository"
	"bazario-backend/internal/token"
)

// ContextUID is the gin context key carrying the verified token uid.
const ContextUID = "uid"

// RequireAuth verifies the bearer token and stashes its uid. Verification
// failure aborts here; the handler chain never runs on a bad token.
func RequireAuth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"code": http.StatusUnauthorized, "message": "unauthorized access"})
			return
		}
		uid, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"code": http.StatusUnauthorized, "message": "unauthorized access"})
			return
		}
		c.Set(ContextUID, uid)
		c.Next()
	}
}

// RequireOwner matches the token uid against the uid the route addresses
// (path param first, query fallback). Pure ownership; role never enters.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		resourceUID := c.Param("uid")
		if resourceUID == "" {
			resourceUID = c.Query("uid")
		}
		if resourceUID == "" || c.GetString(ContextUID) != resourceUID {
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"code": http.StatusForbidden, "message": "forbidden access"})
			return
		}
		c.Next()
	}
}

// RequireAdmin loads the acting user and checks the role. A missing user
// record is Forbidden, not an error.
func RequireAdmin(users repository.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := users.IsAdmin(c.Request.Context(), c.GetString(ContextUID))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError,
				gin.H{"code": http.StatusInternalServerError, "message": "could not verify role"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"code": http.StatusForbidden, "message": "forbidden access"})
			return
		}
		c.Next()
	}
}
