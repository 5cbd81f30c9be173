// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package search

import (
	"context"
	"sync"

	"github.com/curator-ai/curatorctl/internal/logging"
	"github.com/curator-ai/curatorctl/internal/metrics"
	"github.com/curator-ai/curatorctl/internal/models"
)

// QueryFunc runs one search query against the remote API.
type QueryFunc func(ctx context.Context, query string) ([]models.Movie, error)

// Session consumes debouncer emissions, runs queries concurrently, and
// keeps a result set that only ever reflects the latest emission. A
// response arriving after a newer emission was issued is discarded and
// counted, never applied. Visibility is tracked separately from results
// so hiding the result panel does not clear what was fetched.
type Session struct {
	deb   *Debouncer
	query QueryFunc

	mu      sync.Mutex
	results []models.Movie
	visible bool
	applied uint64
}

// NewSession wires a debouncer to a query function.
func NewSession(deb *Debouncer, query QueryFunc) *Session {
	return &Session{deb: deb, query: query}
}

// Update forwards one raw input change to the debouncer.
func (s *Session) Update(raw string) {
	s.deb.Update(raw)
}

// Run consumes emissions until the context is cancelled or the debouncer
// is closed. Each query runs in its own goroutine so a slow response
// never delays a newer query.
func (s *Session) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-s.deb.C():
			if !ok {
				return
			}
			if e.Cleared {
				s.applyCleared(e.Seq)
				continue
			}
			go s.runQuery(ctx, e)
		}
	}
}

func (s *Session) runQuery(ctx context.Context, e Emission) {
	movies, err := s.query(ctx, e.Query)
	if err != nil {
		logging.Warn().Err(err).Str("query", e.Query).Msg("Search query failed")
		movies = nil
	}
	s.apply(e.Seq, movies)
}

// apply installs a response if its sequence number is still the latest
// issued one and newer than anything already applied.
func (s *Session) apply(seq uint64, movies []models.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.deb.Latest() || seq < s.applied {
		metrics.StaleSearchResponses.Inc()
		return
	}
	s.applied = seq
	s.results = movies
	s.visible = true
}

func (s *Session) applyCleared(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.applied {
		return
	}
	s.applied = seq
	s.results = nil
	s.visible = false
}

// Results returns the currently applied result set.
func (s *Session) Results() []models.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// Visible reports whether the result panel should be shown.
func (s *Session) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Hide hides the result panel without discarding results, so reopening
// does not require a refetch.
func (s *Session) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible = false
}

// Show makes previously fetched results visible again.
func (s *Session) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.results != nil {
		s.visible = true
	}
}
