package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // the reference zone must resolve on minimal images
)

type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	Humanitix HumanitixConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// AuthConfig holds the static key callers must present on gated routes.
type AuthConfig struct {
	APIKey string
}

// HumanitixConfig describes how to reach the upstream ticketing API.
type HumanitixConfig struct {
	BaseURL  string
	APIKey   string
	Timezone string
	Timeout  time.Duration
	Page     int
}

type LogConfig struct {
	Dir   string
	Level string
}

// Load reads the process environment once. API keys are never defaulted:
// an empty key is reported by the component that needs it.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         normalizePort(getEnv("PORT", ":8080")),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Auth: AuthConfig{
			APIKey: os.Getenv("API_KEY"),
		},
		Humanitix: HumanitixConfig{
			BaseURL:  strings.TrimSuffix(getEnv("HUMANITIX_BASE_URL", "https://api.humanitix.com"), "/"),
			APIKey:   os.Getenv("HUMANITIX_API_KEY"),
			Timezone: getEnv("HUMANITIX_TIMEZONE", "Australia/Sydney"),
			Timeout:  time.Duration(getEnvInt("HUMANITIX_TIMEOUT_SECONDS", 10)) * time.Second,
			Page:     getEnvInt("HUMANITIX_PAGE", 1),
		},
		Log: LogConfig{
			Dir:   getEnv("LOG_DIR", "logs"),
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Location resolves the fixed reference timezone used for week windows.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Humanitix.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid HUMANITIX_TIMEZONE %q: %w", c.Humanitix.Timezone, err)
	}
	return loc, nil
}

// MissingKeys lists the required keys absent from the environment.
func (c *Config) MissingKeys() []string {
	var missing []string
	if c.Auth.APIKey == "" {
		missing = append(missing, "API_KEY")
	}
	if c.Humanitix.APIKey == "" {
		missing = append(missing, "HUMANITIX_API_KEY")
	}
	return missing
}

func normalizePort(port string) string {
	if strings.HasPrefix(port, ":") || strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
