package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"roomify/services/staff"
	"roomify/utils"
)

// Context keys set by RequireAuth.
const (
	CtxStaffID = "staffID"
	CtxRole    = "role"
)

// RequireAuth validates the bearer token, rejects revoked tokens and stores
// the caller's identity and role on the request context. Authorization is
// enforced here, server-side; the frontend's route gating is UX only.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, role, err := utils.ExtractClaims(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
			return
		}

		authCache := utils.GetAuthCacheClient()
		if n, err := authCache.Exists(c.Request.Context(), staff.RevocationKey(tokenString)).Result(); err == nil && n > 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Token has been revoked"})
			return
		}

		c.Set(CtxStaffID, subject)
		c.Set(CtxRole, role)
		c.Next()
	}
}

// RequireRole gates a route group to callers holding the given role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
