// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package models

// UserProfile is served by GET /api/users/{id}.
type UserProfile struct {
	ID            int64    `json:"id"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	DisplayName   string   `json:"displayName"`
	AvatarURL     string   `json:"avatarUrl,omitempty"`
	Subscriptions []string `json:"subscriptions,omitempty"`
}

// ProfileUpdate is the body for PUT /api/users/{id}. Nil fields are left
// unchanged by the server.
type ProfileUpdate struct {
	DisplayName   *string  `json:"displayName,omitempty"`
	Email         *string  `json:"email,omitempty"`
	Subscriptions []string `json:"subscriptions,omitempty"`
}

// AvatarResponse is returned after a successful avatar upload.
type AvatarResponse struct {
	AvatarURL string `json:"avatarUrl"`
}
