// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct and 'go-playground/validator' to reject malformed values early.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    return err
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - Layering: Values here are defaults for a search; preset files and command
    line flags override them.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/taibuivan/setu/internal/platform/constants"
)

// # Configuration Schema

// Config holds all runtime configuration for the setu CLI.
type Config struct {

	// Runtime settings
	Environment string `env:"ENVIRONMENT" envDefault:"development" validate:"oneof=development production"`
	Debug       bool   `env:"DEBUG"       envDefault:"false"`

	// Logging and terminal output
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	Color     string `env:"COLOR"      envDefault:"auto" validate:"oneof=auto always never"`

	// Search defaults
	Preset    string `env:"PRESET"     validate:"omitempty,file"`
	Proxy     string `env:"PROXY"      validate:"omitempty,hostname_rfc1123"`
	ExcludeAI bool   `env:"EXCLUDE_AI" envDefault:"false"`
}

// # Configuration Loading

// Load parses SETU_* environment variables into a [Config] struct.
func Load() (*Config, error) {
	return load(env.Options{Prefix: constants.EnvPrefix})
}

// LoadFrom parses a fixed variable map instead of the process environment.
// Keys carry the SETU_ prefix.
func LoadFrom(vars map[string]string) (*Config, error) {
	return load(env.Options{Prefix: constants.EnvPrefix, Environment: vars})
}

func load(opts env.Options) (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Map environment variables to struct fields.
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// Reject values outside their documented sets.
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: invalid environment: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the CLI is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the CLI is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// LogLevel returns the minimum level for the root logger.
func (c *Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// JSONLogs reports whether logs are written as JSON. Production always
// logs JSON.
func (c *Config) JSONLogs() bool {
	return c.IsProduction() || strings.EqualFold(c.LogFormat, "json")
}

// LogSource reports whether log records carry the source location. Only
// debug logs in development do.
func (c *Config) LogSource(level slog.Level) bool {
	return c.IsDevelopment() && level <= slog.LevelDebug
}
