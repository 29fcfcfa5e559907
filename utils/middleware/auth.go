package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cherryclub/campus-api/model"
	"github.com/cherryclub/campus-api/utils/auth"
	"github.com/cherryclub/campus-api/utils/response"
)

// AuthMiddleware handles JWT authentication
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager) *AuthMiddleware {
	return &AuthMiddleware{jwtManager: jwtManager}
}

func (m *AuthMiddleware) claimsFromHeader(c *fiber.Ctx) (*auth.Claims, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, auth.ErrInvalidToken
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, auth.ErrInvalidToken
	}

	return m.jwtManager.ValidateToken(parts[1])
}

// Required is middleware that requires a valid access token
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := m.claimsFromHeader(c)
		if err != nil {
			if err == auth.ErrExpiredToken {
				return response.Unauthorized(c, "Token has expired")
			}
			return response.Unauthorized(c, "Missing or invalid authorization token")
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("authority", claims.Authority)
		c.Locals("claims", claims)

		return c.Next()
	}
}

// RequireAdmin requires a valid access token carrying admin authority
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := m.claimsFromHeader(c)
		if err != nil {
			if err == auth.ErrExpiredToken {
				return response.Unauthorized(c, "Token has expired")
			}
			return response.Unauthorized(c, "Missing or invalid authorization token")
		}

		if claims.Authority < model.AuthorityAdmin {
			return response.Forbidden(c, "Admin access required")
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("authority", claims.Authority)
		c.Locals("claims", claims)

		return c.Next()
	}
}

// GetUserID extracts the authenticated user id from context
func GetUserID(c *fiber.Ctx) (uint, bool) {
	userID := c.Locals("user_id")
	if userID == nil {
		return 0, false
	}
	id, ok := userID.(uint)
	return id, ok
}

// GetAuthority extracts the authenticated authority level from context
func GetAuthority(c *fiber.Ctx) (int, bool) {
	authority := c.Locals("authority")
	if authority == nil {
		return 0, false
	}
	a, ok := authority.(int)
	return a, ok
}

// GetClaims extracts full claims from context
func GetClaims(c *fiber.Ctx) (*auth.Claims, bool) {
	claims := c.Locals("claims")
	if claims == nil {
		return nil, false
	}
	claimsData, ok := claims.(*auth.Claims)
	return claimsData, ok
}
