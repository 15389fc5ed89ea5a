package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// Feed endpoints; empty means the SWPC defaults.
	MagURL    string
	PlasmaURL string

	// PollInterval controls how often the scheduler refreshes the feeds.
	PollInterval time.Duration

	// Lookback bounds which trailing samples count as "current" for display.
	Lookback time.Duration

	// HoverTolerance is the maximum time distance for the hover hit-test.
	HoverTolerance time.Duration

	// HTTPTimeout is the connect/read ceiling for outbound feed requests.
	HTTPTimeout time.Duration

	Port string
}

// Load reads configuration from environment with defaults matching the SWPC
// feed cadence: poll every minute, display the last six hours.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.MagURL = os.Getenv("MAG_FEED_URL")
	cfg.PlasmaURL = os.Getenv("PLASMA_FEED_URL")

	var err error
	if cfg.PollInterval, err = getenvDuration("POLL_INTERVAL", "60s"); err != nil {
		return nil, err
	}
	if cfg.Lookback, err = getenvDuration("LOOKBACK_WINDOW", "6h"); err != nil {
		return nil, err
	}
	if cfg.HoverTolerance, err = getenvDuration("HOVER_TOLERANCE", "10m"); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
