package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "dev" {
		t.Fatalf("expected App.Env to be dev, got %q", cfg.App.Env)
	}
	if !cfg.App.IsDev() || cfg.App.IsProd() {
		t.Fatalf("unexpected env predicates for %q", cfg.App.Env)
	}
	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.App.Port)
	}
	if !cfg.DB.UsesSQLite() {
		t.Fatalf("expected sqlite default driver, got %q", cfg.DB.Driver)
	}
	if cfg.DB.DSN == "" {
		t.Fatalf("expected sqlite DSN to be filled in")
	}
	if cfg.Redis.Enabled() {
		t.Fatalf("redis should be disabled without url/address")
	}
	if cfg.Session.IdleTTL != 2*time.Hour {
		t.Fatalf("expected idle ttl 2h, got %v", cfg.Session.IdleTTL)
	}
	if !cfg.Checkout.ClearCartOnOrder {
		t.Fatalf("expected checkout to clear cart by default")
	}
	if cfg.Catalog.CurrencySymbol != "$" {
		t.Fatalf("unexpected currency symbol %q", cfg.Catalog.CurrencySymbol)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("expected two default cors origins, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	t.Setenv(EnvSessionIdleTTL, "30m")
	t.Setenv(EnvCheckoutClear, "false")
	t.Setenv(EnvNewsletterLimit, "2")
	t.Setenv(EnvCORSOrigins, "https://shop.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if !cfg.Redis.Enabled() {
		t.Fatalf("expected redis enabled")
	}
	if cfg.Session.IdleTTL != 30*time.Minute {
		t.Fatalf("expected idle ttl 30m, got %v", cfg.Session.IdleTTL)
	}
	if cfg.Checkout.ClearCartOnOrder {
		t.Fatalf("expected clear cart override to be false")
	}
	if cfg.Newsletter.IPLimit != 2 {
		t.Fatalf("expected newsletter limit 2, got %d", cfg.Newsletter.IPLimit)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "https://shop.example.com" {
		t.Fatalf("unexpected cors origins %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func TestLoad_PostgresRequiresDSNOrLegacyVars(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvDBDriver, DriverPostgres)

	if _, err := Load(); err == nil {
		t.Fatal("expected postgres without dsn to fail")
	}

	t.Setenv(EnvDBHost, "db.internal")
	t.Setenv(EnvDBUser, "shop")
	t.Setenv(EnvDBName, "storefront")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	want := "postgres://shop@db.internal:5432/storefront?sslmode=disable"
	if cfg.DB.DSN != want {
		t.Fatalf("expected dsn %q got %q", want, cfg.DB.DSN)
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "dev")
	t.Setenv(EnvSessionSecret, "secret")
}
