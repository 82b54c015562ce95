// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the searchd runtime configuration.
type Config struct {
	Port         int
	DatabaseURL  string
	RedisURL     string        // optional; empty disables the result cache
	CacheTTL     time.Duration // per-entry lifetime for cached search results
	QueryTimeout time.Duration // per-role store query budget
	JWTSecret    string        // optional; empty means no caller is ever authorized
	Verbose      bool
}

// FromEnv reads configuration from the environment. DATABASE_URL is
// required; everything else has a default.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:         8080,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		CacheTTL:     30 * time.Second,
		QueryTimeout: 3 * time.Second,
		JWTSecret:    os.Getenv("JWT_SECRET"),
		Verbose:      os.Getenv("SEARCH_VERBOSE") == "true",
	}

	if raw := os.Getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}
	if raw := os.Getenv("SEARCH_CACHE_TTL_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SEARCH_CACHE_TTL_MS: %v", err)
		}
		cfg.CacheTTL = time.Duration(ms) * time.Millisecond
	}
	if raw := os.Getenv("SEARCH_QUERY_TIMEOUT_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid SEARCH_QUERY_TIMEOUT_MS: %v", err)
		}
		cfg.QueryTimeout = time.Duration(ms) * time.Millisecond
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *Config) normalize() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got: %d", c.Port)
	}
	if c.QueryTimeout < time.Millisecond {
		return fmt.Errorf("SEARCH_QUERY_TIMEOUT_MS must be at least 1ms")
	}
	return nil
}
