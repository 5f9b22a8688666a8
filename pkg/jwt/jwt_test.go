package jwt

import (
	"testing"
	"time"

	"medifriend/config"

	"github.com/google/uuid"
)

func newTestService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService("test-secret")
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "ana@example.com", "PATIENT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokenID == "" {
		t.Error("token id must be assigned")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("user id = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "ana@example.com" {
		t.Errorf("email = %q", claims.Email)
	}
	if claims.Role != "PATIENT" {
		t.Errorf("role = %q", claims.Role)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("token type = %q, want access", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token id = %q, want %q", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenCarriesRefreshType(t *testing.T) {
	svc := newTestService("test-secret")

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "ana@example.com", "PATIENT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("token type = %q, want refresh", claims.TokenType)
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := newTestService("test-secret")
	userID := uuid.New()

	_, first, err := svc.GenerateAccessToken(userID, "ana@example.com", "PATIENT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, second, err := svc.GenerateAccessToken(userID, "ana@example.com", "PATIENT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("consecutive tokens share a token id, revocation depends on them differing")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newTestService("right-secret").GenerateAccessToken(uuid.New(), "ana@example.com", "PATIENT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := newTestService("wrong-secret").ValidateToken(token); err == nil {
		t.Error("a token signed with another secret must not validate")
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  -time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "ana@example.com", "PATIENT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("an expired token must not validate")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := newTestService("test-secret").ValidateToken("not.a.token"); err == nil {
		t.Error("garbage input must not validate")
	}
}
