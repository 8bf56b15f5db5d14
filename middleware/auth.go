package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthenticateAdmin guards the /api/admin routes. Expects
// "Authorization: Bearer <token>" signed with JWT_SECRET.
func AuthenticateAdmin(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if authHeader == "" || len(parts) < 2 || parts[1] == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Access denied. No token provided."})
		c.Abort()
		return
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Invalid or expired token."})
		c.Abort()
		return
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		c.Set("admin_id", claims["id"])
		c.Set("admin_username", claims["username"])
	}

	c.Next()
}
