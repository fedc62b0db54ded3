// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Config holds the server settings.
type Config struct {
	Port        int
	DBPath      string
	JWTSecret   string
	RequireAuth bool
	StaticPath  string
	LogLevel    string
}

// Addr returns the listen address for Port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// AuthEnabled reports whether bearer tokens are validated.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// NewFromEnv reads the configuration from environment variables, applying
// defaults for unset values.
func NewFromEnv() (Config, error) {
	cfg := Config{
		DBPath:     getEnv("DB_PATH", "./data/shoppinglist.db"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		StaticPath: os.Getenv("STATIC_PATH"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid PORT: %w", err)
	}
	if port < 1 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %d: must be between 1 and 65535", port)
	}
	cfg.Port = port

	if v := os.Getenv("REQUIRE_AUTH"); v != "" {
		cfg.RequireAuth, err = strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid REQUIRE_AUTH: %w", err)
		}
	}
	if cfg.RequireAuth && !cfg.AuthEnabled() {
		return Config{}, errors.New("REQUIRE_AUTH needs JWT_SECRET")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
