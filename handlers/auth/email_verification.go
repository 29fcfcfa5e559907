package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/cherryclub/campus-api/services"
	"github.com/cherryclub/campus-api/utils/response"
)

// SendEmailCodeRequest asks for a verification code to be mailed
type SendEmailCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyEmailCodeRequest submits a previously mailed code for checking
type VerifyEmailCodeRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

// SendEmailCode issues a 6-digit verification code for the address and
// mails it. Re-requesting replaces the pending code.
func (h *AuthHandler) SendEmailCode(c *fiber.Ctx) error {
	var req SendEmailCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return response.BadRequest(c, "A valid email address is required")
	}

	if h.verification == nil {
		return response.InternalServerError(c, "Verification service unavailable")
	}

	code, err := h.verification.IssueCode(c.Context(), email)
	if err != nil {
		return response.InternalServerError(c, "Failed to issue verification code")
	}

	if err := h.email.SendVerificationCode(email, code); err != nil {
		return response.InternalServerError(c, "Failed to send verification email")
	}

	return response.SuccessWithMessage(c, "Verification code sent", nil)
}

// VerifyEmailCode checks a submitted code. Codes are single-use: a correct
// code verifies once, and any attempt consumes the pending code.
func (h *AuthHandler) VerifyEmailCode(c *fiber.Ctx) error {
	var req VerifyEmailCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Code == "" {
		return response.BadRequest(c, "Email and code are required")
	}

	if h.verification == nil {
		return response.InternalServerError(c, "Verification service unavailable")
	}

	err := h.verification.VerifyCode(c.Context(), email, req.Code)
	if err != nil {
		if errors.Is(err, services.ErrCodeExpired) {
			return response.BadRequest(c, "Verification code expired, request a new one")
		}
		if errors.Is(err, services.ErrCodeMismatch) {
			return response.BadRequest(c, "Verification code does not match")
		}
		return response.InternalServerError(c, "Failed to verify code")
	}

	return response.SuccessWithMessage(c, "Email verified", nil)
}
