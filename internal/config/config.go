package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every runtime knob the client reads from the environment.
type Config struct {
	// APIBaseURL is the single configured backend base URL.
	APIBaseURL string
	// StatePath is the file backing durable client-side storage. Empty
	// degrades to in-memory storage.
	StatePath string
	// HTTPTimeout bounds each individual API call.
	HTTPTimeout time.Duration
	// IdleTimeout is the logged-in inactivity threshold before forced logout.
	IdleTimeout time.Duration
	// PaymentPollInterval is the cadence for payment-status polling.
	PaymentPollInterval time.Duration
	// Verbose enables debug logging.
	Verbose bool
}

const (
	defaultAPIBaseURL  = "http://localhost:8000"
	defaultHTTPTimeout = 15 * time.Second
	defaultIdleTimeout = time.Hour
	defaultPollEvery   = 5 * time.Second
)

// Load reads configuration from the environment, consulting a .env file when
// present. Every value has a default; nothing is fatal.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		APIBaseURL:          strings.TrimRight(getEnv("STOREFRONT_API_BASE_URL", defaultAPIBaseURL), "/"),
		StatePath:           getEnv("STOREFRONT_STATE_PATH", defaultStatePath()),
		HTTPTimeout:         getDuration("STOREFRONT_HTTP_TIMEOUT", defaultHTTPTimeout),
		IdleTimeout:         getDuration("STOREFRONT_IDLE_TIMEOUT", defaultIdleTimeout),
		PaymentPollInterval: getDuration("STOREFRONT_PAYMENT_POLL_INTERVAL", defaultPollEvery),
		Verbose:             getBool("STOREFRONT_VERBOSE", false),
	}
}

func defaultStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home + "/.config/storefront/state.json"
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func getBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
