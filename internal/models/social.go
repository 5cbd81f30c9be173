// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package models

import "time"

// FollowUser is a follower or followee edge in the social graph.
type FollowUser struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"displayName"`
}

// FeedItem is one entry in the activity feed served by GET /api/feed.
type FeedItem struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"userId"`
	DisplayName string    `json:"displayName"`
	Action      string    `json:"action"` // "review", "watchlist", "follow"
	ContentID   string    `json:"contentId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
