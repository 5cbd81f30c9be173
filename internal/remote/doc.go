// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

// Package remote provides typed clients for the Curator REST API, one per
// functional area: authentication, content catalog, AI agents, watch
// history, social graph, user profiles, and diagnostics. Each client is a
// thin layer over a gateway.Doer, which supplies authentication headers,
// timeouts, rate limiting, and error classification; clients only know
// paths, parameters, and response shapes.
//
// Every client is defined against an interface and checked with a
// compile-time assertion, so tests can substitute mocks without touching
// the network.
package remote
