package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/cherryclub/campus-api/utils/cache"
)

const (
	// VerificationCodeTTL is how long an issued code stays valid
	VerificationCodeTTL = 5 * time.Minute
	verificationPrefix  = "email_verification:"
)

var (
	ErrCodeMismatch = errors.New("verification code does not match")
	ErrCodeExpired  = errors.New("verification code expired or not issued")
)

// VerificationService issues and checks single-use email verification codes.
// Codes live in Redis with a TTL, so expiry needs no sweeper and restarts
// do not lose pending codes.
type VerificationService struct {
	cache *cache.RedisCache
}

func NewVerificationService(c *cache.RedisCache) *VerificationService {
	return &VerificationService{cache: c}
}

// IssueCode generates a 6-digit code for the email and stores it with the
// standard TTL. Re-issuing replaces any previous code for the same address.
func (v *VerificationService) IssueCode(ctx context.Context, email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}

	if err := v.cache.Set(ctx, verificationPrefix+email, code, VerificationCodeTTL); err != nil {
		return "", fmt.Errorf("failed to store verification code: %w", err)
	}
	return code, nil
}

// VerifyCode checks the submitted code against the stored one. The stored
// code is consumed atomically: a correct code verifies exactly once, and a
// wrong guess also burns the code so it cannot be brute forced.
func (v *VerificationService) VerifyCode(ctx context.Context, email, code string) error {
	stored, err := v.cache.GetDel(ctx, verificationPrefix+email)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			return ErrCodeExpired
		}
		return fmt.Errorf("failed to read verification code: %w", err)
	}

	if stored != code {
		return ErrCodeMismatch
	}
	return nil
}

// generateCode returns a cryptographically random 6-digit code
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
