package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DATA_DIR", "STORE_BACKEND", "SQLITE_PATH", "SESSION_SECRET", "LOGIN_DELAY_MS", "CORS_ORIGINS"} {
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.StoreBackend != "file" {
		t.Errorf("expected default backend file, got %s", cfg.StoreBackend)
	}
	if cfg.LoginDelayMS != 1000 {
		t.Errorf("expected default login delay 1000, got %d", cfg.LoginDelayMS)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("CORS origins = %v", cfg.CORSOrigins)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	os.Setenv("PORT", "9001")
	os.Setenv("STORE_BACKEND", "sqlite")
	os.Setenv("SQLITE_PATH", "/tmp/hb.db")
	os.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")
	defer func() {
		for _, key := range []string{"PORT", "STORE_BACKEND", "SQLITE_PATH", "CORS_ORIGINS"} {
			os.Unsetenv(key)
		}
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9001" {
		t.Errorf("port = %s, want 9001", cfg.Port)
	}
	if cfg.StoreBackend != "sqlite" || cfg.SQLitePath != "/tmp/hb.db" {
		t.Errorf("backend = %s path = %s", cfg.StoreBackend, cfg.SQLitePath)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORS origins = %v", cfg.CORSOrigins)
	}
}

func TestConfig_IsDev(t *testing.T) {
	c := &Config{Env: "development"}
	if !c.IsDev() {
		t.Error("expected IsDev() to return true for development")
	}

	c.Env = "production"
	if c.IsDev() {
		t.Error("expected IsDev() to return false for production")
	}
	if !c.IsProduction() {
		t.Error("expected IsProduction() to return true for production")
	}
}

func TestConfig_LoginDelay(t *testing.T) {
	c := &Config{LoginDelayMS: 250}
	if c.LoginDelay() != 250*time.Millisecond {
		t.Errorf("LoginDelay = %v, want 250ms", c.LoginDelay())
	}
}

func TestConfig_Validate(t *testing.T) {
	base := Config{
		Env:          "development",
		StoreBackend: "file",
		DataDir:      "./data",
		SQLitePath:   "./data/healthboard.db",
		LoginDelayMS: 1000,
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.StoreBackend = "redis" }},
		{"file without data dir", func(c *Config) { c.DataDir = "" }},
		{"sqlite without path", func(c *Config) { c.StoreBackend = "sqlite"; c.SQLitePath = "" }},
		{"negative delay", func(c *Config) { c.LoginDelayMS = -1 }},
		{"production without secret", func(c *Config) { c.Env = "production" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfig_Validate_ProductionWithSecret(t *testing.T) {
	c := Config{
		Env:           "production",
		StoreBackend:  "sqlite",
		SQLitePath:    "/var/lib/healthboard/healthboard.db",
		SessionSecret: "s3cret",
	}
	if err := c.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
