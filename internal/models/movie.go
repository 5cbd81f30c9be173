// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package models

import (
	"fmt"

	"github.com/goccy/go-json"
)

// Movie is a catalog entry as served by the content search service.
type Movie struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview,omitempty"`
	ReleaseDate string   `json:"release_date,omitempty"`
	PosterPath  string   `json:"poster_path,omitempty"`
	VoteAverage float64  `json:"vote_average,omitempty"`
	Genres      []string `json:"genres,omitempty"`
}

// ContentID returns the string form of the movie id used by the history
// and watchlist endpoints.
func (m *Movie) ContentID() string {
	return fmt.Sprintf("%d", m.ID)
}

// Year returns the four-digit release year, or empty if unknown.
func (m *Movie) Year() string {
	if len(m.ReleaseDate) < 4 {
		return ""
	}
	return m.ReleaseDate[:4]
}

// CompleteMovie is the aggregate served by /api/content/movies/{id}/complete.
type CompleteMovie struct {
	Movie
	WatchProviders map[string]any `json:"watch_providers,omitempty"`
	Credits        map[string]any `json:"credits,omitempty"`
}

// MoviePage is one page of the paginated catalog listing.
type MoviePage struct {
	Movies     []Movie `json:"movies"`
	Page       int     `json:"page"`
	TotalPages int     `json:"total_pages"`
	Total      int     `json:"total"`
}

// SearchResponse holds movie search results.
//
// The search service has historically served both a wrapped object
// {"movies": [...]} and a bare JSON array. Both shapes decode into the
// Movies field.
type SearchResponse struct {
	Movies []Movie
}

// UnmarshalJSON accepts either {"movies": [...]} or a bare array.
func (r *SearchResponse) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Movies []Movie `json:"movies"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		r.Movies = wrapped.Movies
		return nil
	}

	var bare []Movie
	if err := json.Unmarshal(data, &bare); err != nil {
		return fmt.Errorf("search response is neither wrapped object nor array: %w", err)
	}
	r.Movies = bare
	return nil
}
