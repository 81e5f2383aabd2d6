package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application configuration sourced from environment variables.
type Config struct {
	Port        string `env:"PORT" envDefault:"8000"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	JWTSecret         string `env:"JWT_SECRET,required"`
	JWTAlg            string `env:"JWT_ALG" envDefault:"HS256"`
	JWTExpiresMinutes int    `env:"JWT_EXPIRES_MINUTES" envDefault:"10080"`

	// Base64-encoded 32-byte AES key used to encrypt stored OAuth tokens.
	TokenEncryptionKey string `env:"TOKEN_ENCRYPTION_KEY,required"`

	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8000"`

	GoogleClientID     string `env:"GOOGLE_CLIENT_ID,required"`
	GoogleClientSecret string `env:"GOOGLE_CLIENT_SECRET,required"`
	GoogleRedirectPath string `env:"GOOGLE_REDIRECT_PATH" envDefault:"/oauth/youtube/callback"`
}

// New parses configuration from the environment.
func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// RedirectURI returns the absolute OAuth callback URL.
func (c *Config) RedirectURI() string {
	return c.BaseURL + c.GoogleRedirectPath
}

// SessionLifetime returns how long issued session tokens stay valid.
func (c *Config) SessionLifetime() time.Duration {
	return time.Duration(c.JWTExpiresMinutes) * time.Minute
}
