package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Provider exposes configuration values to the rest of the application.
// Handlers and services depend on this interface so tests can substitute
// a lightweight implementation.
type Provider interface {
	GetAppAddr() string
	GetAppBaseURL() string
	GetCatalogAPIURL() string
	GetCatalogTimeout() time.Duration
	GetCatalogCacheTTL() time.Duration
	GetImageCacheDir() string
	GetSessionSecret() string
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr         string        `validate:"required"`
	AppBaseURL      string        `validate:"omitempty,url"`
	CatalogAPIURL   string        `validate:"required,url"`
	CatalogTimeout  time.Duration `validate:"gt=0"`
	CatalogCacheTTL time.Duration `validate:"gt=0"`
	ImageCacheDir   string        `validate:"required"`
	SessionSecret   string        `validate:"required,min=16"`
}

func (c *Config) GetAppAddr() string                { return c.AppAddr }
func (c *Config) GetAppBaseURL() string             { return c.AppBaseURL }
func (c *Config) GetCatalogAPIURL() string          { return c.CatalogAPIURL }
func (c *Config) GetCatalogTimeout() time.Duration  { return c.CatalogTimeout }
func (c *Config) GetCatalogCacheTTL() time.Duration { return c.CatalogCacheTTL }
func (c *Config) GetImageCacheDir() string          { return c.ImageCacheDir }
func (c *Config) GetSessionSecret() string          { return c.SessionSecret }

// New loads configuration from environment variables.
// It terminates the process when the configuration is invalid, so callers
// can assume a usable Config.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// FromEnv builds a Config from the current environment without loading a
// .env file. Exposed separately so tests can exercise validation.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AppAddr:         envOr("APP_ADDR", ":8080"),
		AppBaseURL:      os.Getenv("APP_BASE_URL"),
		CatalogAPIURL:   os.Getenv("CATALOG_API_URL"),
		CatalogTimeout:  10 * time.Second,
		CatalogCacheTTL: 5 * time.Minute,
		ImageCacheDir:   envOr("IMAGE_CACHE_DIR", "data/images"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
	}

	if v := os.Getenv("CATALOG_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("CATALOG_TIMEOUT: %w", err)
		}
		cfg.CatalogTimeout = d
	}
	if v := os.Getenv("CATALOG_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("CATALOG_CACHE_TTL: %w", err)
		}
		cfg.CatalogCacheTTL = d
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
