package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

const adminHeader = "X-Admin-Password"

// AdminRequired gates admin routes behind the shared admin password,
// compared in constant time.
func AdminRequired(password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader(adminHeader)
		if got == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin password required"})
			return
		}
		if subtle.ConstantTimeCompare([]byte(got), []byte(password)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid admin password"})
			return
		}
		c.Next()
	}
}
