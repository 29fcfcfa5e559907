package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cherryclub/campus-api/model"
	"github.com/cherryclub/campus-api/utils/response"
)

// RefreshTokenRequest carries the opaque refresh token
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// RefreshToken exchanges a stored refresh token for a new access token.
// Unmatched tokens fail closed with a 401.
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req RefreshTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.RefreshToken == "" {
		return response.BadRequest(c, "Refresh token is required")
	}

	var user model.User
	if err := h.db.Where("refresh_token = ?", req.RefreshToken).First(&user).Error; err != nil {
		return response.Unauthorized(c, "Invalid refresh token")
	}

	token, err := h.jwtManager.GenerateAccessToken(user.ID, user.Authority)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate access token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
	})
}
