package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/linkhive/server/internal/errors"
)

// context keys set by the middleware
const (
	ctxUserIDKey = "user_id"
	ctxEmailKey  = "user_email"
)

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}

	return token, true
}

// AuthMiddleware rejects requests without a valid JWT and stores the
// caller's identity on the context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			errors.Unauthorized(c, "bearer token required")
			c.Abort()
			return
		}

		claims, err := ValidateJWT(token)
		if err != nil {
			errors.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxEmailKey, claims.Email)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the caller's identity when a valid
// token is present and stays silent otherwise
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := ValidateJWT(token); err == nil {
				c.Set(ctxUserIDKey, claims.UserID)
				c.Set(ctxEmailKey, claims.Email)
			}
		}

		c.Next()
	}
}

// GetUserID extracts the authenticated user's ID set by the middleware
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}

	return userID.(string), true
}
