package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"competition-portal-server/models"
	"competition-portal-server/utils"
)

var errTokenRevoked = errors.New("token revoked")

// userFromBearer resolves an Authorization header to a user. Tokens issued
// before the user's last logout are rejected.
func userFromBearer(authHeader string) (models.User, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return models.User{}, errors.New("invalid authorization header format")
	}

	userID, issuedAt, err := utils.ParseToken(parts[1])
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	if err := utils.DB.First(&user, userID).Error; err != nil {
		return models.User{}, errors.New("user not found")
	}

	if user.LastLogoutAt != nil && issuedAt > 0 && issuedAt < user.LastLogoutAt.Unix() {
		return models.User{}, errTokenRevoked
	}

	return user, nil
}

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		user, err := userFromBearer(authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		// Set the user in the context
		c.Set("user", user)

		c.Next()
	}
}

// OptionalAuth loads the user into the context when a valid bearer token is
// present and lets the request continue anonymously otherwise.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			if user, err := userFromBearer(authHeader); err == nil {
				c.Set("user", user)
			}
		}

		c.Next()
	}
}

// AdminRequired gates a route to admin users. Must run after AuthMiddleware.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
			c.Abort()
			return
		}

		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the user AuthMiddleware stored in the context.
func CurrentUser(c *gin.Context) (models.User, bool) {
	userInterface, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := userInterface.(models.User)
	return user, ok
}
