package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cherryclub/campus-api/model"
	authutil "github.com/cherryclub/campus-api/utils/auth"
	"github.com/cherryclub/campus-api/utils/phone"
	"github.com/cherryclub/campus-api/utils/response"
)

// ResetPasswordRequest carries the member's phone and their new password
type ResetPasswordRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// ResetPassword replaces a member's password, looked up by normalized phone.
// The stored refresh token is cleared so existing sessions end.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Phone == "" || req.Password == "" {
		return response.BadRequest(c, "Phone and password are required")
	}

	if !authutil.IsPasswordValid(req.Password) {
		return response.BadRequest(c, "Password must be at least 8 characters")
	}

	normalized := phone.Normalize(req.Phone)

	var user model.User
	if err := h.db.Where("phone = ?", normalized).First(&user).Error; err != nil {
		return response.NotFound(c, "No member found with that phone number")
	}

	hash, err := authutil.HashPassword(req.Password)
	if err != nil {
		return response.InternalServerError(c, "Failed to hash password")
	}

	updates := map[string]interface{}{
		"password_hash": hash,
		"refresh_token": "",
	}
	if err := h.db.Model(&user).Updates(updates).Error; err != nil {
		return response.InternalServerError(c, "Failed to update password")
	}

	return response.SuccessWithMessage(c, "Password updated", nil)
}
