// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher(bcrypt.DefaultCost)

	hash, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if hash == "secret1" || hash == "" {
		t.Fatal("Hash() did not produce a hash")
	}

	if !h.Verify(hash, "secret1") {
		t.Error("Verify() rejected the correct password")
	}
	if h.Verify(hash, "secret2") {
		t.Error("Verify() accepted a wrong password")
	}
	if h.Verify(hash, "") {
		t.Error("Verify() accepted an empty password")
	}
}

func TestNewPasswordHasher_CostFloor(t *testing.T) {
	// Costs below the bcrypt default are raised to it.
	h := NewPasswordHasher(2)
	if h.cost != bcrypt.DefaultCost {
		t.Errorf("cost = %d, want %d", h.cost, bcrypt.DefaultCost)
	}

	h = NewPasswordHasher(12)
	if h.cost != 12 {
		t.Errorf("cost = %d, want 12", h.cost)
	}
}

func TestPasswordHasher_HashesAreSalted(t *testing.T) {
	h := NewPasswordHasher(bcrypt.DefaultCost)

	first, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := h.Hash("secret1")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password are identical, salt missing")
	}
	if !strings.HasPrefix(first, "$2") {
		t.Errorf("hash %q is not in bcrypt format", first)
	}
}
