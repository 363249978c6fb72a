// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

// Package config provides layered configuration for the Showdeck server.
//
// Configuration is loaded with koanf from three layers, later layers
// overriding earlier ones:
//
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml, or CONFIG_PATH)
//  3. SHOWDECK_-prefixed environment variables
//     (SHOWDECK_SECURITY_JWT_SECRET -> security.jwt_secret)
package config

import "time"

// Config is the root configuration for the server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Database DatabaseConfig `koanf:"database"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds credential and request-limiting settings.
//
// JWTSecret is a deployment secret: it is required, never logged, and
// injected into the token manager at construction so tests can supply a
// fixed value.
type SecurityConfig struct {
	JWTSecret       string        `koanf:"jwt_secret"`
	TokenLifetime   time.Duration `koanf:"token_lifetime"`
	BcryptCost      int           `koanf:"bcrypt_cost"`
	CORSOrigins     []string      `koanf:"cors_origins"`
	LoginRateLimit  int           `koanf:"login_rate_limit"`
	LoginRateWindow time.Duration `koanf:"login_rate_window"`
}

// DatabaseConfig holds document store settings.
type DatabaseConfig struct {
	// Path is the badger data directory. Ignored when InMemory is set.
	Path string `koanf:"path"`

	// InMemory runs the store without persistence. Intended for tests.
	InMemory bool `koanf:"in_memory"`

	// SeedShows loads the built-in show catalog at startup when the
	// store contains no shows.
	SeedShows bool `koanf:"seed_shows"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and environment.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Security: SecurityConfig{
			JWTSecret:       "",
			TokenLifetime:   1 * time.Hour,
			BcryptCost:      10,
			CORSOrigins:     []string{"*"},
			LoginRateLimit:  5,
			LoginRateWindow: 5 * time.Minute,
		},
		Database: DatabaseConfig{
			Path:      "./data/showdeck",
			InMemory:  false,
			SeedShows: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
