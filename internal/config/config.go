package config

import (
	"log"
	"os"
	"strings"
	"time"
)

// insecureDefaultSecret keeps local development working without setup.
// Production deployments must set SESSION_SECRET.
const insecureDefaultSecret = "amconnect-dev-secret-change-me"

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr          string
	DatabasePath  string
	SessionSecret []byte
	SessionSecure bool
	SessionTTL    time.Duration
	Timezone      string
	ServerLog     *log.Logger
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	logger := log.New(os.Stdout, "[amconnect-api] ", log.LstdFlags|log.Lshortfile)

	secret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if secret == "" {
		secret = insecureDefaultSecret
		logger.Printf("WARNING: SESSION_SECRET not set, using insecure development default")
	}

	sessionTTL := 24 * time.Hour
	if raw := strings.TrimSpace(os.Getenv("SESSION_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			sessionTTL = parsed
		}
	}

	sessionSecure := strings.EqualFold(strings.TrimSpace(os.Getenv("SESSION_SECURE")), "true")

	cfg := Config{
		Addr:          envOrDefault("HTTP_ADDR", ":8080"),
		DatabasePath:  envOrDefault("DATABASE_PATH", "amconnect.db"),
		SessionSecret: []byte(secret),
		SessionSecure: sessionSecure,
		SessionTTL:    sessionTTL,
		Timezone:      envOrDefault("TIMEZONE", "Asia/Kolkata"),
		ServerLog:     logger,
	}

	cfg.ServerLog.Printf("loaded config: addr=%q database=%q sessionTTL=%s", cfg.Addr, cfg.DatabasePath, cfg.SessionTTL)

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
