package middleware

import (
	"strings"

	"procureflow/internal/config"
	"procureflow/internal/pkg/jwt"
	"procureflow/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Protected creates authentication middleware
func Protected(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var accessToken string

		// 1. Try to get token from cookie first
		accessToken = c.Cookies("access_token")

		// 2. If not in cookie, try Authorization header
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		// 3. No token found
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 4. Validate token
		claims, err := jwt.ValidateToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 5. Set principal info in context
		c.Locals("userID", claims.UserID)
		c.Locals("userType", claims.UserType)
		c.Locals("email", claims.Email)
		c.Locals("roles", claims.Roles)

		return c.Next()
	}
}

// RequireRoles creates role-based authorization middleware.
// The principal passes when it holds any of the allowed roles.
func RequireRoles(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roles, ok := c.Locals("roles").([]string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowed := range allowedRoles {
			for _, role := range roles {
				if role == allowed {
					return c.Next()
				}
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly middleware allows only ROLE_ADMIN
func AdminOnly() fiber.Handler {
	return RequireRoles("ROLE_ADMIN")
}

// SupplierOnly middleware allows only ROLE_SUPPLIER
func SupplierOnly() fiber.Handler {
	return RequireRoles("ROLE_SUPPLIER")
}

// AdminOrSupplier middleware allows ROLE_ADMIN or ROLE_SUPPLIER
func AdminOrSupplier() fiber.Handler {
	return RequireRoles("ROLE_ADMIN", "ROLE_SUPPLIER")
}
