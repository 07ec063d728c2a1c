// Package config loads and validates application configuration from
// environment variables, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the gateway.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:8081"] (Expo dev server).
	CORSOrigins []string

	// BackendBaseURL is the remote guides API, e.g. "http://guides.somee.com/api". Required.
	BackendBaseURL string

	// BackendTimeout bounds every request to the backend. Defaults to 10s.
	BackendTimeout time.Duration

	// BackendRPS throttles outbound requests per second; 0 disables throttling.
	BackendRPS float64

	// BackendBurst is the throttle's burst size. Defaults to 1.
	BackendBurst int

	// RequestTimeout bounds the handling of one inbound request, upstream
	// calls included. Defaults to 30s.
	RequestTimeout time.Duration

	// SessionIdleTimeout drops sessions unused for this long. Defaults to 24h.
	SessionIdleTimeout time.Duration

	// ResolverStrategy is "sequential" or "concurrent". Defaults to "concurrent".
	ResolverStrategy string

	// ResolverConcurrency bounds parallel route fetches when resolving a
	// route's guide. Defaults to 4.
	ResolverConcurrency int

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is loaded first if present; variables
// already set in the environment win over it.
// Returns an error naming every missing or invalid variable.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSOrigins:      splitCSV(getEnv("CORS_ORIGINS", "http://localhost:8081")),
		BackendBaseURL:   strings.TrimRight(os.Getenv("BACKEND_BASE_URL"), "/"),
		ResolverStrategy: strings.ToLower(getEnv("RESOLVER_STRATEGY", "concurrent")),
	}

	var problems []string
	if cfg.BackendBaseURL == "" {
		problems = append(problems, "BACKEND_BASE_URL is required")
	}

	var err error
	if cfg.BackendTimeout, err = time.ParseDuration(getEnv("BACKEND_TIMEOUT", "10s")); err != nil || cfg.BackendTimeout <= 0 {
		problems = append(problems, "BACKEND_TIMEOUT must be a positive duration")
	}
	if cfg.RequestTimeout, err = time.ParseDuration(getEnv("REQUEST_TIMEOUT", "30s")); err != nil || cfg.RequestTimeout <= 0 {
		problems = append(problems, "REQUEST_TIMEOUT must be a positive duration")
	}
	if cfg.SessionIdleTimeout, err = time.ParseDuration(getEnv("SESSION_IDLE_TIMEOUT", "24h")); err != nil || cfg.SessionIdleTimeout <= 0 {
		problems = append(problems, "SESSION_IDLE_TIMEOUT must be a positive duration")
	}
	if cfg.BackendRPS, err = strconv.ParseFloat(getEnv("BACKEND_RPS", "0"), 64); err != nil || cfg.BackendRPS < 0 {
		problems = append(problems, "BACKEND_RPS must be a non-negative number")
	}
	if cfg.BackendBurst, err = strconv.Atoi(getEnv("BACKEND_BURST", "1")); err != nil || cfg.BackendBurst < 1 {
		problems = append(problems, "BACKEND_BURST must be a positive integer")
	}
	if cfg.ResolverConcurrency, err = strconv.Atoi(getEnv("RESOLVER_CONCURRENCY", "4")); err != nil || cfg.ResolverConcurrency < 1 {
		problems = append(problems, "RESOLVER_CONCURRENCY must be a positive integer")
	}
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil || cfg.MaxBodyBytes < 1 {
		problems = append(problems, "MAX_BODY_BYTES must be a positive integer")
	}
	if cfg.ResolverStrategy != "sequential" && cfg.ResolverStrategy != "concurrent" {
		problems = append(problems, "RESOLVER_STRATEGY must be sequential or concurrent")
	}

	if len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
