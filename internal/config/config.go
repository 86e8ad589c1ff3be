package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the storefront service.
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Auth     AuthConfig
	Session  SessionConfig
	Promo    PromoConfig
	Demo     DemoConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// BackendConfig points at the bakery backend, the external REST collaborator
// that owns products, orders and reviews.
type BackendConfig struct {
	BaseURL        string
	RequestTimeout int // seconds, catalog/review/admin calls
	SubmitTimeout  int // seconds, order submission
}

type AuthConfig struct {
	APIKeys []string // Valid API keys for the admin surface
}

type SessionConfig struct {
	TTLMinutes int // idle minutes before a session is swept
}

type PromoConfig struct {
	ListURLs []string // promo code lists; empty disables the feature
}

// DemoConfig controls the fallback-to-sample-data behavior. It keeps the
// storefront browsable when the backend is down, at the cost of serving
// fabricated data; disable it where masking a real outage is a concern.
type DemoConfig struct {
	Fallback bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Backend: BackendConfig{
			BaseURL:        getEnv("BACKEND_BASE_URL", "http://localhost:8000"),
			RequestTimeout: getEnvAsInt("BACKEND_REQUEST_TIMEOUT", 10),
			SubmitTimeout:  getEnvAsInt("ORDER_SUBMIT_TIMEOUT", 15),
		},
		Auth: AuthConfig{
			APIKeys: getEnvAsSlice("ADMIN_API_KEYS", []string{"admintest"}),
		},
		Session: SessionConfig{
			TTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 60),
		},
		Promo: PromoConfig{
			ListURLs: getEnvAsSlice("PROMO_LIST_URLS", nil),
		},
		Demo: DemoConfig{
			Fallback: getEnvAsBool("DEMO_FALLBACK", true),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}
	if _, err := url.Parse(c.Backend.BaseURL); err != nil {
		return fmt.Errorf("invalid BACKEND_BASE_URL: %w", err)
	}

	if len(c.Auth.APIKeys) == 0 {
		return fmt.Errorf("at least one admin API key must be configured")
	}

	if c.Session.TTLMinutes <= 0 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be positive")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
