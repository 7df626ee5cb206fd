package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Token          string
	DatabaseURL    string
	DefaultPrefix  string
	DefaultLocale  string
	OwnerID        string
	MigrationsPath string
}

// Load reads configuration from environment variables and validates it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when variables come from the environment (Docker, CI, etc.).
	}

	cfg := &Config{
		Token:          os.Getenv("TOKEN"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DefaultPrefix:  os.Getenv("DEFAULT_PREFIX"),
		DefaultLocale:  os.Getenv("DEFAULT_LOCALE"),
		OwnerID:        os.Getenv("OWNER_ID"),
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate applies all rules and defaults to the loaded configuration.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required and cannot be empty")
	}

	if strings.TrimSpace(c.DefaultPrefix) == "" {
		c.DefaultPrefix = "!"
	}
	if strings.ContainsAny(c.DefaultPrefix, " \t\n") {
		return fmt.Errorf("config: DEFAULT_PREFIX cannot contain whitespace")
	}

	if strings.TrimSpace(c.DefaultLocale) == "" {
		c.DefaultLocale = "en"
	}

	if c.OwnerID != "" {
		for _, r := range c.OwnerID {
			if r < '0' || r > '9' {
				return fmt.Errorf("config: OWNER_ID must be a Discord user ID (digits only)")
			}
		}
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		// Sensible local default when DATABASE_URL is not provided.
		c.DatabaseURL = "postgres://localhost:5432/cmdbot?sslmode=disable"
	}

	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = "migrations"
	}

	return nil
}
