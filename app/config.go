package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/rubhub/catalog/app/auth"
	"github.com/rubhub/catalog/app/database"
	"github.com/rubhub/catalog/app/servicetypes"
	"github.com/rubhub/catalog/internal/cache"
	"github.com/rubhub/catalog/internal/events"
	"github.com/rubhub/catalog/internal/nexus"
)

type Config struct {
	DB           database.Config
	Auth         auth.Config
	Cache        cache.Config
	Events       events.Config
	ServiceTypes servicetypes.Config

	AppHost         string        `env:"APP_HOST" env-default:"localhost"`
	AppPort         string        `env:"APP_PORT" env-default:"8080"`
	Env             string        `env:"APP_ENV" env-default:"development" validate:"oneof=development staging production test"`
	LogLevel        string        `env:"LOG_LEVEL" env-default:"info"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" env-separator:"," env-default:"*"`
	RateLimitRPS    float64       `env:"RATE_LIMIT_RPS" env-default:"20"`
	RateLimitBurst  int           `env:"RATE_LIMIT_BURST" env-default:"40"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"15s"`
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// Validate checks every section. Database credentials are checked when the
// connection is opened.
func (c *Config) Validate() error {
	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Events.Validate(); err != nil {
		return err
	}
	if err := c.ServiceTypes.Validate(); err != nil {
		return fmt.Errorf("service types: %w", err)
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return errors.New("rate limit burst must be positive when rate limiting is enabled")
	}
	return nil
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig() (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader().Load(c)
	return c, err
}
