// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package models

import "time"

// Review is a watch-history entry with an attached rating and review text.
type Review struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"userId"`
	ContentID  string    `json:"contentId"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"reviewText,omitempty"`
	WatchedAt  time.Time `json:"watchedAt"`
}

// ReviewRequest is the body for creating or updating a review.
// Rating must be between 1 and 10.
type ReviewRequest struct {
	UserID     string `json:"userId"`
	ContentID  string `json:"contentId"`
	Rating     int    `json:"rating"`
	ReviewText string `json:"reviewText,omitempty"`
}

// WatchlistItem is a single watchlist membership record.
type WatchlistItem struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	ContentID string    `json:"contentId"`
	AddedAt   time.Time `json:"addedAt"`
}

// WatchlistStatus is returned by GET /api/history/watchlist/check/{contentId}.
type WatchlistStatus struct {
	InWatchlist bool `json:"inWatchlist"`
}
