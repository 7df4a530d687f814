package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/osse101/InventoryViewer_Go/internal/router"
)

// Config holds the application configuration
type Config struct {
	// ClientURL is the inventory endpoint base; requests go to <ClientURL>?case=<id>
	ClientURL string `envconfig:"CLIENT_URL" validate:"required,http_url"`
	CaseID    string `envconfig:"CASE_ID"`
	// BasePath is the history base the route table is mounted under
	BasePath string `envconfig:"BASE_PATH" default:"/" validate:"required,startswith=/"`
	Port     int    `envconfig:"PORT" default:"8080" validate:"min=1,max=65535"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
	Environment string `envconfig:"ENVIRONMENT" default:"dev" validate:"oneof=dev staging prod test"`
	ServiceName string `envconfig:"SERVICE_NAME" default:"inventory-viewer" validate:"required"`
	Version     string `envconfig:"VERSION" default:"dev"`

	DiscardStale       bool     `envconfig:"DISCARD_STALE" default:"false"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// Load reads .env files (DefaultEnvFile when none are given), then the
// process environment. Missing env files are ignored; variables already set
// in the environment win over file values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: reading %s: %w", MsgLoadFailed, f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds and validates a Config from the process environment only
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", MsgLoadFailed, err)
	}

	cfg.normalize()

	if err := GetValidator().ValidateStruct(&cfg); err != nil {
		return nil, fmt.Errorf("%s: %s", MsgInvalidConf, FormatValidationError(err))
	}

	return &cfg, nil
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.Environment = strings.ToLower(strings.TrimSpace(c.Environment))
	c.ClientURL = strings.TrimSpace(c.ClientURL)
	c.BasePath = router.NormalizeBasePath(c.BasePath)

	origins := c.CORSAllowedOrigins[:0]
	for _, o := range c.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.CORSAllowedOrigins = origins
}

// Address returns the listen address for the HTTP server
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// IsDevelopment reports whether the app runs in the dev environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev"
}
