// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// minSecretLength is the minimum accepted signing secret length.
// Shorter HMAC keys weaken the token signature.
const minSecretLength = 32

// Validate checks that required configuration is present and sane.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.JWTSecret == "" {
		return fmt.Errorf("SHOWDECK_SECURITY_JWT_SECRET is required")
	}
	if len(c.Security.JWTSecret) < minSecretLength {
		return fmt.Errorf("security.jwt_secret must be at least %d characters", minSecretLength)
	}
	if c.Security.TokenLifetime <= 0 {
		return fmt.Errorf("security.token_lifetime must be positive")
	}
	if c.Security.BcryptCost < bcrypt.DefaultCost || c.Security.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("security.bcrypt_cost must be between %d and %d, got %d",
			bcrypt.DefaultCost, bcrypt.MaxCost, c.Security.BcryptCost)
	}
	if c.Security.LoginRateLimit < 1 {
		return fmt.Errorf("security.login_rate_limit must be at least 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
