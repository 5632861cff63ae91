package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	Port                string
	GinMode             string
	FirebaseProjectID   string
	FirebaseCredsBase64 string
	FirebaseCredsFile   string
	AllowedOrigins      string

	LogLevel  string
	LogFormat string

	// DisplayTimezone is the IANA zone the dashboard renders dates in.
	DisplayTimezone string
	Location        *time.Location

	ReviewRatePerSec float64
	ReviewRateBurst  int

	EmployeeRole string
	ScoringFile  string
}

// Load reads environment variables into a Config with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:                getEnv("PORT", "8080"),
		GinMode:             getEnv("GIN_MODE", "release"),
		FirebaseProjectID:   strings.TrimSpace(os.Getenv("FIREBASE_PROJECT_ID")),
		FirebaseCredsBase64: strings.TrimSpace(os.Getenv("FIREBASE_CREDS_BASE64")),
		FirebaseCredsFile:   strings.TrimSpace(os.Getenv("FIREBASE_CREDS_FILE")),
		AllowedOrigins:      strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "console"),
		DisplayTimezone:     getEnv("DISPLAY_TIMEZONE", "UTC"),
		EmployeeRole:        getEnv("EMPLOYEE_ROLE", "employ"),
		ScoringFile:         strings.TrimSpace(os.Getenv("SCORING_FILE")),
	}

	loc, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		return Config{}, fmt.Errorf("parse DISPLAY_TIMEZONE: %w", err)
	}
	cfg.Location = loc

	rate, err := parseFloatEnv("REVIEW_RATE_PER_SEC", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse REVIEW_RATE_PER_SEC: %w", err)
	}
	cfg.ReviewRatePerSec = rate

	burst, err := parseIntEnv("REVIEW_RATE_BURST", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse REVIEW_RATE_BURST: %w", err)
	}
	cfg.ReviewRateBurst = burst

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate ensures required fields are present.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.FirebaseProjectID == "" {
		return errors.New("FIREBASE_PROJECT_ID is required")
	}
	if c.FirebaseCredsBase64 == "" && c.FirebaseCredsFile == "" && os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		return errors.New("provide FIREBASE_CREDS_BASE64 or FIREBASE_CREDS_FILE for Firestore auth")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.LogFormat)
	}
	if c.ReviewRatePerSec <= 0 || c.ReviewRateBurst <= 0 {
		return errors.New("REVIEW_RATE_PER_SEC and REVIEW_RATE_BURST must be positive")
	}
	return nil
}

// FirebaseCredentialsJSON returns the service account JSON bytes and the source used.
func (c Config) FirebaseCredentialsJSON() ([]byte, string, error) {
	if c.FirebaseCredsBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(c.FirebaseCredsBase64)
		if err != nil {
			return nil, "base64", fmt.Errorf("decode FIREBASE_CREDS_BASE64: %w", err)
		}
		return decoded, "base64", nil
	}
	if c.FirebaseCredsFile != "" {
		data, err := os.ReadFile(c.FirebaseCredsFile)
		if err != nil {
			return nil, "file", fmt.Errorf("read FIREBASE_CREDS_FILE: %w", err)
		}
		return data, "file", nil
	}
	return nil, "", errors.New("no firebase credentials found")
}

// Origins splits AllowedOrigins into trimmed entries.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func getEnv(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}

func parseFloatEnv(key string, defaultVal float64) (float64, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal, nil
	}
	return strconv.ParseFloat(val, 64)
}

func parseIntEnv(key string, defaultVal int) (int, error) {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return defaultVal, nil
	}
	return strconv.Atoi(val)
}
