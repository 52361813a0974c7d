package middleware

import (
	"net/http"

	"dormhub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

// TokenHeader is the request header carrying the signed token. The API keeps
// the original wire contract of a custom header rather than a Bearer scheme.
const TokenHeader = "x-auth-token"

// AuthRequired is a Gin middleware that authenticates API requests.
// It checks for the presence and validity of a signed token in the
// x-auth-token header; verification is stateless, there is no session store.
func AuthRequired(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader(TokenHeader)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied."})
			c.Abort()
			return
		}

		// Malformed and expired tokens get the same answer
		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid."})
			c.Abort()
			return
		}

		// Set identity in context for handlers to use
		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("isAdmin", claims.IsAdmin)

		c.Next()
	}
}

// AdminOnly checks the authenticated identity's admin flag. It must run
// after AuthRequired.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("isAdmin")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied. Only administrators can perform this action."})
			c.Abort()
			return
		}

		admin, ok := isAdmin.(bool)
		if !ok || !admin {
			c.JSON(http.StatusForbidden, gin.H{"message": "Access denied. Only administrators can perform this action."})
			c.Abort()
			return
		}

		c.Next()
	}
}
