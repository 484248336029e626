package middleware

import (
	"net/http"
	"strings"

	"github.com/GBaga/back-end-food-api/auth"
	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth.
const (
	ContextUserID  = "user_id"
	ContextIsAdmin = "is_admin"
)

// RequireAuth validates the bearer token and stores the caller's identity in
// the request context.
func RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	identity, err := auth.VerifyToken(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set(ContextUserID, identity.UserID)
	c.Set(ContextIsAdmin, identity.IsAdmin)
	c.Next()
}

// RequireAdmin gates a route group to administrators. Must run after
// RequireAuth.
func RequireAdmin(c *gin.Context) {
	if !c.GetBool(ContextIsAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		c.Abort()
		return
	}
	c.Next()
}

// CurrentUserID returns the authenticated user's id from the context.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(ContextUserID)
	id, _ := v.(uint)
	return id
}

// IsAdmin reports whether the authenticated user carries the admin flag.
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ContextIsAdmin)
}
