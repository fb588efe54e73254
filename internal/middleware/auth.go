package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gambo-stadium/gambo-api/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	AuthUserIDKey = "auth_user_id"
	AuthRoleKey   = "auth_user_role"
)

// AuthMiddleware validates the bearer token and injects the caller's id and
// role into the request context. The user must still exist and be active;
// the token alone is not enough.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateJWT(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		var role string
		err = db.Table("users").
			Select("role").
			Where("id = ? AND active = ? AND deleted_at IS NULL", claims.UserID, true).
			Scan(&role).Error
		if err != nil || role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User not found or inactive"})
			return
		}

		c.Set(AuthUserIDKey, claims.UserID)
		c.Set(AuthRoleKey, role)
		c.Next()
	}
}

// GetUserIDFromContext extracts the authenticated user's ID from the context.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userID, exists := c.Get(AuthUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}

	uid, ok := userID.(uint)
	if !ok {
		return 0, fmt.Errorf("user ID has unexpected type: %T", userID)
	}
	return uid, nil
}

// GetUserRoleFromContext extracts the authenticated user's role from the context.
func GetUserRoleFromContext(c *gin.Context) (string, error) {
	role, exists := c.Get(AuthRoleKey)
	if !exists {
		return "", errors.New("user role not found in context")
	}

	r, ok := role.(string)
	if !ok {
		return "", fmt.Errorf("user role has unexpected type: %T", role)
	}
	return r, nil
}

// IsAdmin reports whether the authenticated caller has the admin role.
func IsAdmin(c *gin.Context) bool {
	role, err := GetUserRoleFromContext(c)
	return err == nil && strings.EqualFold(role, "admin")
}
