package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cherryclub/campus-api/model"
	authutil "github.com/cherryclub/campus-api/utils/auth"
	"github.com/cherryclub/campus-api/utils/phone"
	"github.com/cherryclub/campus-api/utils/response"
)

// LoginRequest represents a member login request
type LoginRequest struct {
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the member payload returned on login, credentials omitted
type UserResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	UniversityID   uint   `json:"universityId"`
	Authority      int    `json:"authority"`
	IsCampusLeader bool   `json:"isCampusLeader"`
}

// Login verifies phone+password credentials and issues tokens.
// The phone number is normalized before lookup, so any separator formatting
// matches. Unknown phone and wrong password return the same generic 401.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Phone == "" || req.Password == "" {
		return response.BadRequest(c, "Phone and password are required")
	}

	normalized := phone.Normalize(req.Phone)
	ip := c.IP()

	var user model.User
	if err := h.db.Where("phone = ?", normalized).First(&user).Error; err != nil {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid phone number or password")
	}

	if err := authutil.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		if h.bruteForceProtection != nil {
			h.bruteForceProtection.RecordFailedAttempt(c, ip)
		}
		return response.Unauthorized(c, "Invalid phone number or password")
	}

	if h.bruteForceProtection != nil {
		h.bruteForceProtection.RecordSuccessfulAttempt(c, ip)
	}

	token, err := h.jwtManager.GenerateAccessToken(user.ID, user.Authority)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate access token")
	}

	// Replacing the stored value invalidates any earlier session
	refreshToken := authutil.NewRefreshToken()
	if err := h.db.Model(&user).Update("refresh_token", refreshToken).Error; err != nil {
		return response.InternalServerError(c, "Failed to persist refresh token")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"user": UserResponse{
			ID:             user.ID,
			Name:           user.Name,
			Phone:          user.Phone,
			UniversityID:   user.UniversityID,
			Authority:      user.Authority,
			IsCampusLeader: user.IsCampusLeader,
		},
		"token":        token,
		"refreshToken": refreshToken,
	})
}
