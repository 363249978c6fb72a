// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/showdeck/showdeck/internal/store"
)

// ListShows handles GET /shows: the whole catalog, pass-through read.
func (h *Handler) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.store.ListShows(r.Context())
	if err != nil {
		respondInternalError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, shows)
}

// GetShow handles GET /shows/{id}.
func (h *Handler) GetShow(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	show, err := h.store.GetShow(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrShowNotFound) {
			respondMessage(w, http.StatusNotFound, "Show not found")
			return
		}
		respondInternalError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, show)
}

// Health handles GET /health. Answering at all means the store is open
// and the router is serving.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
