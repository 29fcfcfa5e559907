package auth

import (
	"gorm.io/gorm"

	"github.com/cherryclub/campus-api/services"
	authutil "github.com/cherryclub/campus-api/utils/auth"
	"github.com/cherryclub/campus-api/utils/middleware"
)

// AuthHandler handles login, token refresh, password reset and email
// verification
type AuthHandler struct {
	db                   *gorm.DB
	jwtManager           *authutil.JWTManager
	bruteForceProtection *middleware.BruteForceProtection
	verification         *services.VerificationService
	email                *services.EmailService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	db *gorm.DB,
	jwtManager *authutil.JWTManager,
	bruteForceProtection *middleware.BruteForceProtection,
	verification *services.VerificationService,
	email *services.EmailService,
) *AuthHandler {
	return &AuthHandler{
		db:                   db,
		jwtManager:           jwtManager,
		bruteForceProtection: bruteForceProtection,
		verification:         verification,
		email:                email,
	}
}
