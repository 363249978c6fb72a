// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

package api

import (
	"errors"
	"net/http"

	"github.com/showdeck/showdeck/internal/logging"
	"github.com/showdeck/showdeck/internal/models"
	"github.com/showdeck/showdeck/internal/store"
	"github.com/showdeck/showdeck/internal/validation"
)

// Signup handles POST /auth/signup. It creates an account with an empty
// watchlist; no token is issued here, issuance happens only at login.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Username, email, and password are required")
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		logging.Ctx(r.Context()).Debug().Err(verr).Msg("Signup validation failed")
		respondMessage(w, http.StatusBadRequest, "Username, email, and password are required")
		return
	}

	hash, err := h.passwords.Hash(req.Password)
	if err != nil {
		respondInternalError(w, r, err)
		return
	}

	user, err := h.store.CreateUser(r.Context(), req.Username, req.Email, hash)
	switch {
	case errors.Is(err, store.ErrUsernameTaken):
		respondMessage(w, http.StatusBadRequest, "Username already exists")
		return
	case errors.Is(err, store.ErrEmailTaken):
		respondMessage(w, http.StatusBadRequest, "Email already exists")
		return
	case err != nil:
		respondInternalError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("user_id", user.ID).Msg("Account created")
	respondMessage(w, http.StatusCreated, "User created successfully")
}

// Login handles POST /auth/login. The identifier matches username or
// email. Unknown identifier and wrong password produce the identical
// response, so the endpoint cannot be used to enumerate accounts; the
// internal reason is only logged at debug level.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Identifier and password are required")
		return
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		respondMessage(w, http.StatusBadRequest, "Identifier and password are required")
		return
	}

	user, err := h.store.GetUserByIdentifier(r.Context(), req.Identifier)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			logging.Ctx(r.Context()).Debug().Msg("Login failed: unknown identifier")
			respondMessage(w, http.StatusBadRequest, "Invalid credentials")
			return
		}
		respondInternalError(w, r, err)
		return
	}

	if !h.passwords.Verify(user.PasswordHash, req.Password) {
		logging.Ctx(r.Context()).Debug().Str("user_id", user.ID).Msg("Login failed: password mismatch")
		respondMessage(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := h.tokens.Generate(user.ID, user.Username)
	if err != nil {
		respondInternalError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().Str("user_id", user.ID).Msg("Login succeeded")
	respondJSON(w, http.StatusOK, models.LoginResponse{
		Token:    token,
		Username: user.Username,
	})
}
