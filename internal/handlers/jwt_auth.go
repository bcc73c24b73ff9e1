package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/EduGate-2025/loan-service/internal/auth"
	"github.com/EduGate-2025/loan-service/internal/models"
)

// JWTAuthMiddleware authenticates requests with self-issued session tokens.
type JWTAuthMiddleware struct {
	tokens *auth.TokenManager
}

func NewJWTAuthMiddleware(tokens *auth.TokenManager) *JWTAuthMiddleware {
	return &JWTAuthMiddleware{tokens: tokens}
}

// AuthMiddleware requires a valid bearer token and stores the verified
// claims in the request context.
func (m *JWTAuthMiddleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Detail: "Authorization header missing",
			})
			c.Abort()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Detail: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		claims, err := m.tokens.Verify(tokenParts[1])
		if err != nil {
			detail := "Invalid token"
			if errors.Is(err, auth.ErrTokenExpired) {
				detail = "Token expired"
			}
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Detail: detail})
			c.Abort()
			return
		}

		c.Set("user_email", claims.Subject)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// RequireRoleMiddleware allows only the listed roles past. Must run after
// AuthMiddleware.
func (m *JWTAuthMiddleware) RequireRoleMiddleware(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get("user_role")
		if !exists {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Detail: "User not authenticated",
			})
			c.Abort()
			return
		}

		role, ok := value.(models.UserRole)
		if ok {
			for _, allowed := range roles {
				if role == allowed {
					c.Next()
					return
				}
			}
		}

		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Detail: "Insufficient permissions",
		})
		c.Abort()
	}
}
