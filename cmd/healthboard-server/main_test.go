package main

import (
	"path/filepath"
	"testing"

	"github.com/healthboard/healthboard/internal/config"
	"github.com/healthboard/healthboard/internal/platform/store"
)

func TestOpenStore_File(t *testing.T) {
	cfg := &config.Config{StoreBackend: "file", DataDir: t.TempDir()}

	st, closeStore, err := openStore(cfg)
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer closeStore()

	if err := st.Save(store.SlotHospitals, []string{"x"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestOpenStore_SQLite(t *testing.T) {
	cfg := &config.Config{
		StoreBackend: "sqlite",
		SQLitePath:   filepath.Join(t.TempDir(), "healthboard.db"),
	}

	st, closeStore, err := openStore(cfg)
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer closeStore()

	if err := st.Save(store.SlotHospitals, []string{"x"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestOpenStore_Memory(t *testing.T) {
	cfg := &config.Config{StoreBackend: "memory"}

	st, closeStore, err := openStore(cfg)
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer closeStore()

	if st == nil {
		t.Fatal("expected a store")
	}
}

func TestOpenStore_Unknown(t *testing.T) {
	cfg := &config.Config{StoreBackend: "redis"}

	if _, _, err := openStore(cfg); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestResolveSessionSecret_Configured(t *testing.T) {
	cfg := &config.Config{Env: "production", SessionSecret: "s3cret"}

	secret, generated, err := resolveSessionSecret(cfg)
	if err != nil {
		t.Fatalf("resolveSessionSecret: %v", err)
	}
	if generated {
		t.Error("expected configured secret, not a generated one")
	}
	if secret != "s3cret" {
		t.Errorf("secret = %q, want s3cret", secret)
	}
}

func TestResolveSessionSecret_DevGenerates(t *testing.T) {
	cfg := &config.Config{Env: "development"}

	secret, generated, err := resolveSessionSecret(cfg)
	if err != nil {
		t.Fatalf("resolveSessionSecret: %v", err)
	}
	if !generated {
		t.Error("expected a generated secret in development")
	}
	if len(secret) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(secret))
	}
}

func TestResolveSessionSecret_ProductionRequires(t *testing.T) {
	cfg := &config.Config{Env: "production"}

	if _, _, err := resolveSessionSecret(cfg); err == nil {
		t.Fatal("expected error when SESSION_SECRET is missing outside development")
	}
}
