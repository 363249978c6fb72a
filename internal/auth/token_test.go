// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/showdeck/showdeck/internal/config"
)

const testSecret = "this_is_a_long_test_signing_secret_0123456789"

func testManager(t *testing.T, lifetime time.Duration) *TokenManager {
	t.Helper()
	m, err := NewTokenManager(config.SecurityConfig{
		JWTSecret:     testSecret,
		TokenLifetime: lifetime,
	})
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	return m
}

func TestNewTokenManager(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.SecurityConfig
		wantErr bool
	}{
		{
			name:    "valid secret",
			cfg:     config.SecurityConfig{JWTSecret: testSecret, TokenLifetime: time.Hour},
			wantErr: false,
		},
		{
			name:    "empty secret",
			cfg:     config.SecurityConfig{JWTSecret: "", TokenLifetime: time.Hour},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewTokenManager(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("NewTokenManager() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("NewTokenManager() unexpected error = %v", err)
				return
			}
			if m == nil {
				t.Error("NewTokenManager() returned nil manager")
			}
		})
	}
}

func TestGenerateAndValidate(t *testing.T) {
	m := testManager(t, time.Hour)

	token, err := m.Generate("user-123", "alice")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if token == "" {
		t.Fatal("Generate() returned empty token")
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if claims.Subject != "user-123" {
		t.Errorf("Validate() subject = %q, want %q", claims.Subject, "user-123")
	}
	if claims.Username != "alice" {
		t.Errorf("Validate() username = %q, want %q", claims.Username, "alice")
	}
}

func TestValidate_Expired(t *testing.T) {
	// A negative lifetime mints a token that expired before it was issued.
	m := testManager(t, -1*time.Minute)

	token, err := m.Generate("user-123", "alice")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := m.Validate(token); err == nil {
		t.Error("Validate() accepted an expired token")
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	m := testManager(t, time.Hour)
	other, err := NewTokenManager(config.SecurityConfig{
		JWTSecret:     "a_completely_different_secret_key_9876543210",
		TokenLifetime: time.Hour,
	})
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}

	token, err := m.Generate("user-123", "alice")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := other.Validate(token); err == nil {
		t.Error("Validate() accepted a token signed with a different secret")
	}
}

func TestValidate_Tampered(t *testing.T) {
	m := testManager(t, time.Hour)

	token, err := m.Generate("user-123", "alice")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}

	// Mutate every position of the payload segment in turn; the
	// signature must catch each single-character change.
	payload := parts[1]
	for i := 0; i < len(payload); i++ {
		mutated := []byte(payload)
		if mutated[i] == 'A' {
			mutated[i] = 'B'
		} else {
			mutated[i] = 'A'
		}
		if string(mutated) == payload {
			continue
		}

		forged := parts[0] + "." + string(mutated) + "." + parts[2]
		if _, err := m.Validate(forged); err == nil {
			t.Fatalf("Validate() accepted token with payload byte %d mutated", i)
		}
	}
}

func TestValidate_Malformed(t *testing.T) {
	m := testManager(t, time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "garbage"},
		{"two segments", "aaaa.bbbb"},
		{"unsigned", "eyJhbGciOiJub25lIn0.eyJzdWIiOiJ1c2VyLTEyMyJ9."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Validate(tt.token); err == nil {
				t.Error("Validate() accepted malformed token")
			}
		})
	}
}
