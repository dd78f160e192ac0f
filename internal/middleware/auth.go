// Package middleware provides HTTP middleware components for the
// application, including authentication and authorization for the fiber
// web framework.
package middleware

import (
	"log"
	"strings"

	"fixmycity/internal/models"
	"fixmycity/internal/services/auth"
	"fixmycity/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware handles JWT token validation and user authentication.
// It extracts the JWT token from the Authorization header, validates it,
// and adds the user claims to the request context.
type AuthMiddleware struct {
	authService auth.Service
}

func NewAuthMiddleware(authService auth.Service) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// Handler validates JWT tokens and adds claims to the request context.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return utils.Unauthorized(c, "missing authorization header")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	_, claims, err := utils.ParseToken(tokenString)
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return utils.Unauthorized(c, "invalid token")
	}

	// A token issued before the last logout carries a stale version.
	version, err := m.authService.GetUserTokenVersion(claims.UserID)
	if err != nil {
		return utils.Unauthorized(c, "invalid token")
	}
	if version != claims.TokenVersion {
		return utils.Unauthorized(c, "token has been revoked")
	}

	c.Locals("claims", claims)
	return c.Next()
}

// RequirePermission gates a route on a specific permission.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*models.UserClaims)
		if !ok {
			return utils.Unauthorized(c, "invalid claims")
		}
		if !claims.HasPermission(permission) {
			return utils.Forbidden(c, "insufficient permissions")
		}
		return c.Next()
	}
}
