// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

package api

import (
	"errors"
	"net/http"

	"github.com/showdeck/showdeck/internal/auth"
	"github.com/showdeck/showdeck/internal/logging"
	"github.com/showdeck/showdeck/internal/models"
	"github.com/showdeck/showdeck/internal/store"
	"github.com/showdeck/showdeck/internal/validation"
)

// WatchlistAdd handles POST /watchlist. The account comes from the
// verified token; the show id from the body is appended as an opaque
// reference without checking it against the catalog.
func (h *Handler) WatchlistAdd(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req models.WatchlistAddRequest
	if err := decodeJSON(r, &req); err != nil {
		respondMessage(w, http.StatusBadRequest, "Show ID is required")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondMessage(w, http.StatusBadRequest, "Show ID is required")
		return
	}

	err := h.store.AppendToWatchlist(r.Context(), userID, req.ShowID)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		respondMessage(w, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, store.ErrAlreadyInWatchlist):
		respondMessage(w, http.StatusBadRequest, "Show already in watchlist")
		return
	case err != nil:
		respondInternalError(w, r, err)
		return
	}

	logging.Ctx(r.Context()).Info().
		Str("user_id", userID).
		Str("show_id", req.ShowID).
		Msg("Show added to watchlist")
	respondMessage(w, http.StatusOK, "Show added to watchlist")
}

// WatchlistGet handles GET /watchlist: the account's watchlist expanded
// into full show documents, in append order. Dangling references are
// skipped by the store; an empty watchlist is an empty array, never
// null.
func (h *Handler) WatchlistGet(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	shows, err := h.store.ExpandWatchlist(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			respondMessage(w, http.StatusNotFound, "User not found")
			return
		}
		respondInternalError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, shows)
}
