// SPDX-FileCopyrightText: 2026 Logan Lindquist Land
// SPDX-License-Identifier: FSL-1.1-MIT

// Package config provides environment-based configuration for textile-showcase.
// Configuration only tunes diagnostics; it never changes what the program prints.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/joho/godotenv"
)

// Default values used when a variable is unset or invalid.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	LogLevel  string // debug, info, warn, error (default: info)
	LogFormat string // text, json (default: text)
}

// validLogLevels contains the allowed log level values.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// validLogFormats contains the allowed log format values.
var validLogFormats = []string{"text", "json"}

// Load reads configuration from environment variables, with .env file as optional override.
// The .env file is loaded if present but errors are ignored if it doesn't exist.
//
// Load always returns a usable Config. Invalid values are replaced by their
// defaults and reported together in the returned error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:  getEnv("TEXTILE_LOG_LEVEL", DefaultLogLevel),
		LogFormat: getEnv("TEXTILE_LOG_FORMAT", DefaultLogFormat),
	}

	var errs []error

	if !slices.Contains(validLogLevels, cfg.LogLevel) {
		errs = append(errs, fmt.Errorf("invalid TEXTILE_LOG_LEVEL %q: must be one of %v", cfg.LogLevel, validLogLevels))
		cfg.LogLevel = DefaultLogLevel
	}

	if !slices.Contains(validLogFormats, cfg.LogFormat) {
		errs = append(errs, fmt.Errorf("invalid TEXTILE_LOG_FORMAT %q: must be one of %v", cfg.LogFormat, validLogFormats))
		cfg.LogFormat = DefaultLogFormat
	}

	return cfg, errors.Join(errs...)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
