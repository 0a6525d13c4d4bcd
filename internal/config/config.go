package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Prefix namespaces every environment variable, e.g. PECUSNET_ADDR.
const Prefix = "PECUSNET"

// Config holds runtime configuration for the dashboard server.
type Config struct {
	Env      string `envconfig:"ENV" default:"development" validate:"oneof=development production test"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	Addr     string `envconfig:"ADDR" default:":8080" validate:"required"`
	BasePath string `envconfig:"BASE_PATH" default:"/" validate:"required,startswith=/"`

	ProfilePath   string        `envconfig:"PROFILE"`
	Seed          int64         `envconfig:"SEED" default:"0"`
	AssetsHost    string        `envconfig:"ASSETS_HOST" default:"https://go-echarts.github.io/go-echarts-assets/assets/" validate:"required,url"`
	ChartCacheTTL time.Duration `envconfig:"CHART_CACHE_TTL" default:"5m" validate:"gte=0"`

	// DefaultViewer identifies requests when no auth middleware sets a user.
	DefaultViewer string `envconfig:"DEFAULT_VIEWER" default:"demo"`
}

var validate = validator.New()

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints. Call it again after applying flag overrides.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// IsProduction returns true when the server runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.Env == "production"
}
