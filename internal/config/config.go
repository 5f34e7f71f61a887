package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds process-wide settings, read once at startup from the
// environment (after a best-effort .env load) and treated as immutable.
type Config struct {
	// APIBaseURL is the conference backend root, e.g. https://api.conf.example.
	APIBaseURL string

	// PushSocketURL is the websocket endpoint of the push delivery
	// channel. Empty disables the listener.
	PushSocketURL string

	// DBPath is the local SQLite file holding the session and the
	// registered push token.
	DBPath string

	RequestTimeout    time.Duration
	RequestsPerSecond int
}

// Load reads configuration from the environment.
// POST: Returns an error listing missing required variables, if any
func Load() (*Config, error) {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	cfg := &Config{}

	cfg.APIBaseURL = os.Getenv("COMPANION_API_URL")
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("required environment variable is not set: COMPANION_API_URL")
	}

	cfg.PushSocketURL = getEnvString("COMPANION_PUSH_URL", "")
	cfg.DBPath = getEnvString("COMPANION_DB_PATH", "companion.db")
	cfg.RequestTimeout = getEnvDuration("COMPANION_REQUEST_TIMEOUT", 15*time.Second)
	cfg.RequestsPerSecond = getEnvInt("COMPANION_REQUESTS_PER_SECOND", 5)

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
