package session

import (
	"strings"
	"testing"
	"time"

	"github.com/angelmondragon/storefront-backend/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func testConfig() config.SessionConfig {
	return config.SessionConfig{
		Secret:   "secret",
		Issuer:   "storefront",
		TokenTTL: time.Hour,
	}
}

func TestMintAndParse(t *testing.T) {
	cfg := testConfig()
	now := time.Now().UTC()
	id := uuid.New()

	token, err := Mint(cfg, now, id)
	if err != nil {
		t.Fatalf("mint session token: %v", err)
	}

	claims, err := Parse(cfg, token)
	if err != nil {
		t.Fatalf("parse session token: %v", err)
	}
	if claims.SessionID != id {
		t.Fatalf("expected sid %s, got %s", id, claims.SessionID)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %s, got %s", cfg.Issuer, claims.Issuer)
	}
	diff := claims.ExpiresAt.Sub(now.Add(cfg.TokenTTL))
	if diff < 0 {
		diff = -diff
	}
	if diff >= time.Second {
		t.Fatalf("unexpected expiry %v", claims.ExpiresAt)
	}
}

func TestParseRejectsTamperedAndExpiredTokens(t *testing.T) {
	cfg := testConfig()
	id := uuid.New()

	token, err := Mint(cfg, time.Now(), id)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	other := cfg
	other.Secret = "different"
	if _, err := Parse(other, token); err == nil {
		t.Fatal("expected signature mismatch")
	}

	expired, err := Mint(cfg, time.Now().Add(-2*time.Hour), id)
	if err != nil {
		t.Fatalf("mint expired: %v", err)
	}
	if _, err := Parse(cfg, expired); err == nil {
		t.Fatal("expected expired token to fail")
	}

	if _, err := Parse(cfg, strings.Repeat("x", 20)); err == nil {
		t.Fatal("expected garbage token to fail")
	}
}

func TestParseRejectsOtherAlgorithms(t *testing.T) {
	cfg := testConfig()
	claims := Claims{
		SessionID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(cfg.Secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := Parse(cfg, token); err == nil {
		t.Fatal("expected HS512 token to be rejected")
	}
}

func TestMintValidatesInputs(t *testing.T) {
	cfg := testConfig()
	if _, err := Mint(cfg, time.Now(), uuid.Nil); err == nil {
		t.Fatal("expected nil session id to fail")
	}
	cfg.Secret = ""
	if _, err := Mint(cfg, time.Now(), uuid.New()); err == nil {
		t.Fatal("expected missing secret to fail")
	}
}
