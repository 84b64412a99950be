package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is parsed from the environment. BaseURL is an optional
// explicit override; when empty the serving layer derives the base URL
// from forwarded-protocol/host headers per request.
type Config struct {
	Host     string `env:"HOST" envDefault:"0.0.0.0"`
	Port     int    `env:"PORT" envDefault:"8080"`
	DataPath string `env:"BLOG_DATA_PATH" envDefault:"./data/blog-posts.json"`
	BaseURL  string `env:"BASE_URL"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Debug    bool   `env:"DEBUG" envDefault:"false"`
}

// New loads .env if present and parses the config from the
// environment.
func New() (*Config, error) {
	// A missing .env file is fine; real deployments set env vars
	// directly.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}

	return &cfg, nil
}

// Addr is the host:port the HTTP server binds to.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
