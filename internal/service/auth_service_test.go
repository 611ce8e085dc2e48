package service

import (
	"testing"
	"time"

	"github.com/reelify/reelify-backend/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret",
		JWTExpiry:  time.Hour,
		BcryptCost: 4,
	}
}

func TestIssueAndValidateToken(t *testing.T) {
	s := NewAuthService(testConfig())

	token, err := s.IssueToken("alice@example.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("email = %q, want alice@example.com", claims.Email)
	}
	if claims.Subject != "alice@example.com" {
		t.Errorf("subject = %q, want alice@example.com", claims.Subject)
	}

	wantExpiry := time.Now().Add(time.Hour)
	if got := claims.ExpiresAt.Time; got.Before(wantExpiry.Add(-time.Minute)) || got.After(wantExpiry.Add(time.Minute)) {
		t.Errorf("expiry = %v, want ~%v", got, wantExpiry)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := testConfig()
	cfg.JWTExpiry = -time.Hour // Already expired at issuance.
	s := NewAuthService(cfg)

	token, err := s.IssueToken("alice@example.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := s.ValidateToken(token); err == nil {
		t.Fatal("ValidateToken accepted an expired token")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewAuthService(testConfig())

	otherCfg := testConfig()
	otherCfg.JWTSecret = "different-secret"
	verifier := NewAuthService(otherCfg)

	token, err := issuer.IssueToken("alice@example.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("ValidateToken accepted a token signed with another secret")
	}
}

func TestValidateTokenMalformed(t *testing.T) {
	s := NewAuthService(testConfig())

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		if _, err := s.ValidateToken(tok); err == nil {
			t.Errorf("ValidateToken(%q) accepted a malformed token", tok)
		}
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	s := NewAuthService(testConfig())

	hash, err := s.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := s.CheckPassword(hash, "hunter22"); err != nil {
		t.Errorf("CheckPassword rejected the correct password: %v", err)
	}
	if err := s.CheckPassword(hash, "hunter23"); err == nil {
		t.Error("CheckPassword accepted a wrong password")
	}
}
