package internal

import (
	"os"
	"strconv"
	"time"
)

// Config is built once at startup and handed to components by injection;
// nothing reads the environment after this point.
type Config struct {
	ProviderBaseURL string
	GeocoderBaseURL string

	// EnableBrowser turns on the browser-automation stage. Off by
	// default: headless Chrome must be present on the host.
	EnableBrowser bool
	// EnableFetch turns on the plain-fetch stage.
	EnableFetch bool

	GeocoderTimeout time.Duration
	FetchTimeout    time.Duration
	BrowserTimeout  time.Duration

	// CacheTTL bounds how long an acquisition result is reused for
	// identical queries within one server session.
	CacheTTL time.Duration

	// HistoryRetention is how long search-history rows are kept before
	// the nightly prune removes them.
	HistoryRetention time.Duration
}

func ConfigFromEnv() *Config {
	return &Config{
		ProviderBaseURL:  envString("PROVIDER_BASE_URL", ""),
		GeocoderBaseURL:  envString("GEOCODER_BASE_URL", ""),
		EnableBrowser:    envBool("ENABLE_BROWSER_AUTOMATION", false),
		EnableFetch:      envBool("ENABLE_LIVE_FETCH", true),
		GeocoderTimeout:  envDuration("GEOCODER_TIMEOUT", 10*time.Second),
		FetchTimeout:     envDuration("FETCH_TIMEOUT", 30*time.Second),
		BrowserTimeout:   envDuration("BROWSER_TIMEOUT", 30*time.Second),
		CacheTTL:         envDuration("CACHE_TTL", 15*time.Minute),
		HistoryRetention: envDuration("HISTORY_RETENTION", 90*24*time.Hour),
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
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
