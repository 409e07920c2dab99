// internal/api/middleware/auth.go
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	// BusinessIDKey is the gin context key holding the caller's tenant id.
	BusinessIDKey = "business_id"
	// RoleKey is the gin context key holding the caller's role.
	RoleKey = "role"
)

// Claims are the session-token claims issued by the auth provider.
type Claims struct {
	BusinessID string `json:"business_id"`
	Role       string `json:"role"`
	jwt.RegisteredClaims
}

// Auth validates the bearer token and stores the tenant scope on the
// context. Every data query downstream filters by this business id.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		claims := &Claims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !parsed.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(BusinessIDKey, claims.BusinessID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// BusinessID returns the authenticated tenant id, or "" when the session
// carries none (e.g. a profile not yet attached to a business).
func BusinessID(c *gin.Context) string {
	return c.GetString(BusinessIDKey)
}

// Role returns the authenticated caller's role claim.
func Role(c *gin.Context) string {
	return c.GetString(RoleKey)
}

// RequireRole guards a route to callers holding one of the given roles.
// Runs after Auth, which stores the role claim on the context.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := Role(c)
		for _, want := range roles {
			if role == want {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
	}
}
