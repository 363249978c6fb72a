// Showdeck - Show Catalog and Personal Watchlist Server
// Copyright 2026 Showdeck Authors
// SPDX-License-Identifier: MIT
// https://github.com/showdeck/showdeck

package models

import "time"

// Show is a catalog document. The watchlist subsystem treats it as
// opaque and only uses ID as a reference.
//
// Not every record carries every field: older imports lack trailers,
// full plots or language lists. Optional fields are omitempty so a
// sparse document round-trips without inventing empty values.
type Show struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Poster  string   `json:"poster"`
	Plot    string   `json:"plot"`
	Genres  []string `json:"genres"`
	Runtime int      `json:"runtime"`
	Cast    []string `json:"cast"`
	Year    int      `json:"year"`
	Rated   string   `json:"rated"`
	Type    string   `json:"type"`

	Released  *time.Time `json:"released,omitempty"`
	FullPlot  string     `json:"fullplot,omitempty"`
	Languages []string   `json:"languages,omitempty"`
	Directors []string   `json:"directors,omitempty"`
	Countries []string   `json:"countries,omitempty"`
	Trailer   string     `json:"trailer,omitempty"`
}
