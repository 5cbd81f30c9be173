// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

// Package models defines the data transfer objects exchanged with the
// Curator platform services: auth, content catalog, watch history,
// social graph, user profiles, and the AI creative agents.
//
// The canonical movie identifier is the integer "id" field. History and
// watchlist endpoints address content by the string form of the same id.
package models
