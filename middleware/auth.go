package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-booking/utils"
)

const (
	ContextUserID = "userId"
	ContextRole   = "role"
)

// RequireAuth validates the bearer token and stores the caller's identity
// on the context. The client's own role check is only a display hint;
// this is the authoritative one.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.JSONError(c, http.StatusUnauthorized, "error.missingToken", "missing or malformed Authorization header")
			c.Abort()
			return
		}
		claims, err := utils.ParseToken(strings.TrimSpace(parts[1]))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "error.invalidToken", "invalid or expired token")
			c.Abort()
			return
		}
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole allows the request through only for the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		utils.JSONError(c, http.StatusForbidden, "error.forbidden", "insufficient permissions")
		c.Abort()
	}
}
