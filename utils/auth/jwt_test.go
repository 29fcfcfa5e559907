package auth

import (
	"testing"
	"time"
)

func newTestManager(expiry time.Duration) *JWTManager {
	return NewJWTManager(JWTConfig{
		Secret: "test-secret-key",
		Expiry: expiry,
		Issuer: "campus-api-test",
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager(time.Hour)

	token, err := m.GenerateAccessToken(42, 2)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Authority != 2 {
		t.Errorf("Authority = %d, want 2", claims.Authority)
	}
	if claims.ID == "" {
		t.Error("expected a jti on the token")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	m := newTestManager(-time.Minute)

	token, err := m.GenerateAccessToken(1, 0)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := m.ValidateToken(token); err != ErrExpiredToken {
		t.Errorf("ValidateToken = %v, want ErrExpiredToken", err)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	m := newTestManager(time.Hour)
	other := NewJWTManager(JWTConfig{Secret: "other-secret", Expiry: time.Hour})

	token, err := m.GenerateAccessToken(1, 0)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := other.ValidateToken(token); err != ErrInvalidToken {
		t.Errorf("ValidateToken with wrong secret = %v, want ErrInvalidToken", err)
	}
}

func TestNewRefreshTokenOpaque(t *testing.T) {
	a, b := NewRefreshToken(), NewRefreshToken()
	if a == "" || a == b {
		t.Error("refresh tokens must be non-empty and unique")
	}

	m := newTestManager(time.Hour)
	if _, err := m.ValidateToken(a); err == nil {
		t.Error("an opaque refresh token must not validate as an access token")
	}
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("pw123456")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if err := VerifyPassword(hash, "pw123456"); err != nil {
		t.Errorf("VerifyPassword with correct password: %v", err)
	}
	if err := VerifyPassword(hash, "wrong-password"); err != ErrPasswordMismatch {
		t.Errorf("VerifyPassword with wrong password = %v, want ErrPasswordMismatch", err)
	}
}

func TestShortPasswordRejected(t *testing.T) {
	if _, err := HashPassword("short"); err != ErrPasswordTooShort {
		t.Errorf("HashPassword = %v, want ErrPasswordTooShort", err)
	}
}
