// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

// Package config loads curatorctl configuration using Koanf v2 with layered
// sources (highest priority wins):
//
//  1. Environment variables (CURATOR_* prefix)
//  2. Config file (curator.yaml)
//  3. Built-in defaults
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the root configuration for curatorctl.
type Config struct {
	API     APIConfig     `koanf:"api"`
	Search  SearchConfig  `koanf:"search"`
	Session SessionConfig `koanf:"session"`
	Log     LogConfig     `koanf:"log"`
}

// APIConfig configures the HTTP request gateway.
type APIConfig struct {
	// BaseURL is the Curator API gateway origin, e.g. https://api.curator.example
	BaseURL string `koanf:"base_url" validate:"required,url"`

	// Timeout is the fixed per-request timeout. Requests exceeding it
	// surface as a network timeout to the caller; they are never retried.
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	// RateLimit caps outgoing requests per second. 0 disables limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"gte=0"`

	// RateBurst is the limiter burst size. Only meaningful with RateLimit > 0.
	RateBurst int `koanf:"rate_burst" validate:"gte=0"`

	// CircuitBreaker enables the gobreaker wrapper around the gateway.
	CircuitBreaker bool `koanf:"circuit_breaker"`

	// Region is the default region for now-playing queries.
	Region string `koanf:"region" validate:"required,len=2"`
}

// SearchConfig configures the debounced query channel.
type SearchConfig struct {
	// DebounceWindow is how long the raw input must stay unchanged before
	// a query is emitted.
	DebounceWindow time.Duration `koanf:"debounce_window" validate:"gt=0"`

	// MinQueryLength is the minimum input length that triggers a search.
	// Shorter input emits a cleared signal instead.
	MinQueryLength int `koanf:"min_query_length" validate:"gte=1"`

	// Limit is the maximum number of results requested per search.
	Limit int `koanf:"limit" validate:"gt=0,lte=50"`
}

// SessionConfig configures durable session storage and token refresh.
type SessionConfig struct {
	// Path is the BadgerDB directory holding the persisted session.
	// Empty selects an in-memory store (no persistence across runs).
	Path string `koanf:"path"`

	// RefreshLeeway is how long before access-token expiry the background
	// refresher rotates the token.
	RefreshLeeway time.Duration `koanf:"refresh_leeway" validate:"gte=0"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// Default returns a Config with all default values, skipping file and
// environment layering. Used by tests and as the base for Load.
func Default() *Config {
	return defaultConfig()
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:8080",
			Timeout:        10 * time.Second,
			RateLimit:      10,
			RateBurst:      20,
			CircuitBreaker: true,
			Region:         "IN",
		},
		Search: SearchConfig{
			DebounceWindow: 300 * time.Millisecond,
			MinQueryLength: 2,
			Limit:          10,
		},
		Session: SessionConfig{
			Path:          "", // resolved to a per-user data dir by the CLI
			RefreshLeeway: 2 * time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
