package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"pokecard/internal/catalog"
	"pokecard/internal/validation"
)

// DefaultCatalogSize is the number of creatures the random pick draws from.
const DefaultCatalogSize = 898

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env      string // "development", "production", etc.
	LogLevel string // debug, info, warn, error

	// Server
	ServerAddr string
	BaseURL    string

	// TLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string

	// Catalog API
	CatalogBaseURL string
	CatalogSize    int

	// CORS
	CORSOrigins string // Comma-separated allowed origins

	// Rate limiting
	RateLimitMax int    // Requests per minute per IP
	RedisURL     string // Optional limiter storage, e.g. "redis://localhost:6379/0"

	// Pages
	PageTTL         time.Duration // Idle time after which an open page is dropped
	JanitorInterval time.Duration

	// Features
	MetricsEnabled bool

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Pokédex Lookup"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER

	// User-visible status text, overridable from CONFIG_FILE.
	Messages Messages
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:             getEnv("ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ServerAddr:      getEnv("SERVER_ADDR", ":3000"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:3000"),
		TLSEnabled:      getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:     getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:      getEnv("TLS_KEY_FILE", ""),
		CatalogBaseURL:  getEnv("CATALOG_BASE_URL", catalog.DefaultBaseURL),
		CatalogSize:     getEnvInt("CATALOG_SIZE", DefaultCatalogSize),
		CORSOrigins:     getEnv("CORS_ORIGINS", ""),
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 100),
		RedisURL:        getEnv("REDIS_URL", ""),
		PageTTL:         getEnvDuration("PAGE_TTL", 30*time.Minute),
		JanitorInterval: getEnvDuration("JANITOR_INTERVAL", time.Minute),
		MetricsEnabled:  getEnv("METRICS_ENABLED", "") != "",

		SiteTitle:   getEnv("SITE_TITLE", "Pokédex Lookup"),
		SiteTagline: getEnv("SITE_TAGLINE", "Find any Pokémon by name or number"),
		SiteFooter:  getEnv("SITE_FOOTER", "Data from PokéAPI"),

		Messages: DefaultMessages(),
	}
}

// Validate checks the settings the lookup pipeline depends on.
func (c *Config) Validate() error {
	if valid, msg := validation.ValidateURL(c.CatalogBaseURL); !valid {
		return errors.New("CATALOG_BASE_URL: " + msg)
	}
	if c.CatalogSize < 1 {
		return errors.New("CATALOG_SIZE must be at least 1")
	}
	if c.PageTTL <= 0 {
		return errors.New("PAGE_TTL must be positive")
	}
	if c.JanitorInterval <= 0 {
		return errors.New("JANITOR_INTERVAL must be positive")
	}
	if c.TLSEnabled && (c.TLSCertFile == "" || c.TLSKeyFile == "") {
		return errors.New("TLS_CERT_FILE and TLS_KEY_FILE are required when TLS_ENABLED is set")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return d
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
