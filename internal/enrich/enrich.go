// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

// Package enrich fans out per-id detail fetches for a list of foreign-key
// references (watchlist entry -> movie, review -> movie, follow -> user)
// and collects the outcomes without letting one failure abort the rest.
package enrich

import (
	"context"
	"sync"

	"github.com/curator-ai/curatorctl/internal/metrics"
)

// Result is the outcome of one detail fetch. Failed entries keep their
// position so the output always aligns with the input id list.
type Result[T any] struct {
	ID     string
	Detail *T
	Failed bool
}

// Enrich fetches details for every id concurrently. The output has exactly
// one entry per input id, in input order; each fetch failure is isolated
// into its own entry. Enrich never returns an error: callers distinguish
// an empty source list (empty output) from partial failure (entries with
// Failed set).
func Enrich[T any](ctx context.Context, ids []string, fetchOne func(context.Context, string) (T, error)) []Result[T] {
	return EnrichN(ctx, ids, len(ids), fetchOne)
}

// EnrichN is Enrich with at most limit fetches in flight. Lists here are
// small (typically under 50), but a bound keeps pathological inputs from
// opening one connection per id.
func EnrichN[T any](ctx context.Context, ids []string, limit int, fetchOne func(context.Context, string) (T, error)) []Result[T] {
	results := make([]Result[T], len(ids))
	if len(ids) == 0 {
		return results
	}
	if limit < 1 {
		limit = 1
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			detail, err := fetchOne(ctx, id)
			if err != nil {
				metrics.EnrichmentFailures.Inc()
				results[i] = Result[T]{ID: id, Failed: true}
				return
			}
			results[i] = Result[T]{ID: id, Detail: &detail}
		}(i, id)
	}

	wg.Wait()
	return results
}

// Failures counts the failed entries in a result list.
func Failures[T any](results []Result[T]) int {
	n := 0
	for i := range results {
		if results[i].Failed {
			n++
		}
	}
	return n
}
