package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected default addr %q", cfg.HTTPAddr)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected default shutdown timeout %v", cfg.ShutdownTimeout)
	}
	// Redis is opt-in; without an address carts stay in process memory.
	if cfg.RedisAddr != "" {
		t.Fatalf("expected no redis by default, got %q", cfg.RedisAddr)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis.internal:6379")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "30")
	t.Setenv("CORS_ORIGINS", "https://tienda.example.com, https://admin.example.com")
	t.Setenv("STORAGE_PATH_STYLE", "true")

	cfg := FromEnv()
	if cfg.RedisAddr != "redis.internal:6379" || cfg.RedisDB != 3 {
		t.Fatalf("unexpected redis config %q db %d", cfg.RedisAddr, cfg.RedisDB)
	}
	if cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://admin.example.com" {
		t.Fatalf("unexpected origins %v", cfg.CORSOrigins)
	}
	if !cfg.Storage.UsePathStyle {
		t.Fatal("expected path-style storage enabled")
	}
}
