package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL matches the backend's default servlet context.
	DefaultBaseURL = "http://localhost:8080/banque"

	DefaultTimeout = 10 * time.Second
)

type Config struct {
	// BaseURL is the collection endpoint root; requests go to BaseURL + "/comptes".
	BaseURL string

	// LogPath is an optional file the TUI logs to. Empty disables logging
	// (the TUI owns the terminal, so it cannot log to stderr).
	LogPath string

	// Timeout bounds each HTTP round trip.
	Timeout time.Duration
}

// Load reads configuration from a .env file (best-effort) and the
// environment. Flags may override individual fields afterwards.
func Load() Config {
	// Missing .env is the common case, not an error.
	_ = godotenv.Load()

	return Config{
		BaseURL: NormalizeBaseURL(envOr("COMPTES_API_URL", DefaultBaseURL)),
		LogPath: strings.TrimSpace(os.Getenv("COMPTES_LOG")),
		Timeout: envDuration("COMPTES_TIMEOUT", DefaultTimeout),
	}
}

// NormalizeBaseURL strips trailing slashes so path joining stays predictable.
func NormalizeBaseURL(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), "/")
}

func envOr(k, d string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return d
}

func envDuration(k string, d time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	parsed, err := time.ParseDuration(v)
	if err != nil || parsed <= 0 {
		return d
	}
	return parsed
}
