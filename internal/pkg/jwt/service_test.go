package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func fixedService(at time.Time) *HMACService {
	s := NewHMACService("test-secret", 15*time.Minute, 7*24*time.Hour)
	s.now = func() time.Time { return at }
	return s
}

func TestAccessTokenRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := fixedService(now)
	userID := uuid.New()

	tok, err := s.GenerateAccessToken(userID, "dev@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := s.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID || claims.Email != "dev@example.com" {
		t.Fatalf("claims = %+v", claims)
	}
	if claims.TokenType != TokenTypeAccess || s.IsRefreshToken(claims) {
		t.Fatalf("access token misidentified: %+v", claims)
	}
}

func TestRefreshTokenType(t *testing.T) {
	s := fixedService(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	tok, err := s.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	claims, err := s.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !s.IsRefreshToken(claims) || claims.Email != "" {
		t.Fatalf("refresh claims = %+v", claims)
	}
}

func TestExpiredToken(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := fixedService(issued)

	tok, err := s.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	s.now = func() time.Time { return issued.Add(16 * time.Minute) }
	if _, err := s.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestWrongSecretRejected(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tok, err := fixedService(now).GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := NewHMACService("different-secret", time.Minute, time.Minute)
	other.now = func() time.Time { return now }
	if _, err := other.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	s := fixedService(time.Now())
	if _, err := s.ValidateToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}
