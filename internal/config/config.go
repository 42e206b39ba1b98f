package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"babyheaven-storefront/internal/upload"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	ContentProjectID  string
	ContentDataset    string
	ContentAPIVersion string
	ContentToken      string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	Storage upload.Config

	InstagramToken string

	// FallbackWhatsAppPhone receives orders when the store settings carry
	// no phone number.
	FallbackWhatsAppPhone string
}

// FromEnv builds Config with defaults, overridden by environment variables.
func FromEnv() Config {
	return Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
		CORSOrigins:     envList("CORS_ORIGINS", []string{"http://localhost:3000"}),

		ContentProjectID:  envOrDefault("CONTENT_PROJECT_ID", ""),
		ContentDataset:    envOrDefault("CONTENT_DATASET", "production"),
		ContentAPIVersion: envOrDefault("CONTENT_API_VERSION", "2024-01-01"),
		ContentToken:      envOrDefault("CONTENT_API_TOKEN", ""),

		// Empty means no Redis: sessions fall back to in-process memory.
		RedisAddr:     envOrDefault("REDIS_ADDR", ""),
		RedisPassword: envOrDefault("REDIS_PASSWORD", ""),
		RedisDB:       envInt("REDIS_DB", 0),

		Storage: upload.Config{
			Endpoint:      envOrDefault("STORAGE_ENDPOINT", ""),
			Region:        envOrDefault("STORAGE_REGION", "us-east-1"),
			Bucket:        envOrDefault("STORAGE_BUCKET", ""),
			AccessKey:     envOrDefault("STORAGE_ACCESS_KEY", ""),
			SecretKey:     envOrDefault("STORAGE_SECRET_KEY", ""),
			UsePathStyle:  envBool("STORAGE_PATH_STYLE", false),
			PublicBaseURL: envOrDefault("STORAGE_PUBLIC_BASE_URL", ""),
		},

		InstagramToken: envOrDefault("INSTAGRAM_ACCESS_TOKEN", ""),

		FallbackWhatsAppPhone: envOrDefault("FALLBACK_WHATSAPP_PHONE", ""),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func envList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := parts[:0]
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}
