// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

package validation

import (
	"testing"

	"github.com/showdeck/showdeck/internal/models"
)

func TestValidateStruct_Signup(t *testing.T) {
	tests := []struct {
		name    string
		req     models.SignupRequest
		wantErr bool
	}{
		{
			name:    "valid",
			req:     models.SignupRequest{Username: "alice", Email: "alice@x.com", Password: "secret1"},
			wantErr: false,
		},
		{
			name:    "missing username",
			req:     models.SignupRequest{Email: "alice@x.com", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "missing email",
			req:     models.SignupRequest{Username: "alice", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			req:     models.SignupRequest{Username: "alice", Email: "not-an-email", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "missing password",
			req:     models.SignupRequest{Username: "alice", Email: "alice@x.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateStruct_ReportsAllFields(t *testing.T) {
	err := ValidateStruct(models.SignupRequest{})
	if err == nil {
		t.Fatal("ValidateStruct() on zero struct should fail")
	}
	if len(err.Fields) != 3 {
		t.Errorf("got %d field errors, want 3: %v", len(err.Fields), err)
	}
}

func TestValidateStruct_Login(t *testing.T) {
	err := ValidateStruct(models.LoginRequest{Identifier: "alice", Password: "secret1"})
	if err != nil {
		t.Errorf("ValidateStruct() error = %v, want nil", err)
	}

	if err := ValidateStruct(models.LoginRequest{Identifier: "alice"}); err == nil {
		t.Error("ValidateStruct() without password should fail")
	}
}
