package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the option-chain clients. Every field
// has a working default; a .env file or environment variables override them.
type Config struct {
	YahooBaseURL string `json:"yahoo_base_url"`
	NSEBaseURL   string `json:"nse_base_url"`

	UserAgent          string `json:"user_agent"`
	HTTPTimeoutSeconds int    `json:"http_timeout_seconds"`

	Debug bool `json:"debug"`
}

func DefaultConfig() *Config {
	cfg := &Config{
		YahooBaseURL: "https://finance.yahoo.com",
		NSEBaseURL:   "https://www.nseindia.com",

		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		HTTPTimeoutSeconds: 30,

		Debug: false,
	}

	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg.loadFromEnv()

	return cfg
}

func (c *Config) loadFromEnv() {
	if val := os.Getenv("YAHOO_BASE_URL"); val != "" {
		c.YahooBaseURL = val
	}
	if val := os.Getenv("NSE_BASE_URL"); val != "" {
		c.NSEBaseURL = val
	}
	if val := os.Getenv("USER_AGENT"); val != "" {
		c.UserAgent = val
	}
	if val := os.Getenv("HTTP_TIMEOUT_SECONDS"); val != "" {
		if secs, err := strconv.Atoi(val); err == nil && secs > 0 {
			c.HTTPTimeoutSeconds = secs
		}
	}
	if val := os.Getenv("DEBUG"); val != "" {
		if debug, err := strconv.ParseBool(val); err == nil {
			c.Debug = debug
		}
	}
}

// HTTPTimeout returns the configured client timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}
