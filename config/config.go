package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string
	DatabaseURL string

	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	JWTIssuer          string
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration

	OTPSecret []byte
	OTPPeriod time.Duration

	BcryptCost int

	ResendAPIKey string
	EmailFrom    string

	EskizBaseURL string
	EskizToken   string

	NotifyTimeout time.Duration
}

// Load reads configuration from the environment. Secrets have no defaults:
// a missing secret is a startup error, not a silent fallback.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:           envOr("HTTP_ADDR", ":8080"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		AccessTokenSecret:  []byte(os.Getenv("ACCESS_TOKEN_SECRET")),
		RefreshTokenSecret: []byte(os.Getenv("REFRESH_TOKEN_SECRET")),
		JWTIssuer:          envOr("JWT_ISSUER", "bozor"),
		AccessTokenTTL:     envDuration("ACCESS_TOKEN_TTL", 15*time.Minute),
		RefreshTokenTTL:    envDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),
		OTPSecret:          []byte(os.Getenv("OTP_SECRET")),
		OTPPeriod:          envDuration("OTP_PERIOD", 5*time.Minute),
		BcryptCost:         envInt("BCRYPT_COST", 10),
		ResendAPIKey:       os.Getenv("RESEND_API_KEY"),
		EmailFrom:          os.Getenv("EMAIL_FROM"),
		EskizBaseURL:       envOr("ESKIZ_BASE_URL", "https://notify.eskiz.uz/api"),
		EskizToken:         os.Getenv("ESKIZ_TOKEN"),
		NotifyTimeout:      envDuration("NOTIFY_TIMEOUT", 10*time.Second),
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(cfg.AccessTokenSecret) == 0 {
		missing = append(missing, "ACCESS_TOKEN_SECRET")
	}
	if len(cfg.RefreshTokenSecret) == 0 {
		missing = append(missing, "REFRESH_TOKEN_SECRET")
	}
	if len(cfg.OTPSecret) == 0 {
		missing = append(missing, "OTP_SECRET")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	if string(cfg.AccessTokenSecret) == string(cfg.RefreshTokenSecret) {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must be distinct")
	}
	return cfg, nil
}

func envOr(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
