// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

// Package metrics provides Prometheus instrumentation for the remote-state
// sync layer: gateway request outcomes, circuit breaker state, optimistic
// toggle rollbacks, stale search responses, and enrichment failures.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Gateway metrics

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "curator_request_duration_seconds",
			Help:    "Duration of Curator API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	RequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_request_errors_total",
			Help: "Total number of Curator API request failures by error kind",
		},
		[]string{"method", "path", "kind"},
	)

	RequestsByStatus = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_requests_total",
			Help: "Total number of Curator API requests by HTTP status",
		},
		[]string{"method", "status"},
	)

	// Circuit breaker metrics

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "curator_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_circuit_breaker_requests_total",
			Help: "Circuit breaker request outcomes",
		},
		[]string{"name", "outcome"}, // "success", "failure", "rejected"
	)

	// Sync-layer state metrics

	ToggleRollbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_toggle_rollbacks_total",
			Help: "Optimistic toggle mutations rolled back after remote failure",
		},
		[]string{"relation"}, // "watchlist", "follow"
	)

	StaleSearchResponses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "curator_stale_search_responses_total",
			Help: "Search responses discarded because a newer query superseded them",
		},
	)

	EnrichmentFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "curator_enrichment_failures_total",
			Help: "Per-item detail fetch failures during list enrichment",
		},
	)

	SessionTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "curator_session_transitions_total",
			Help: "Credential carrier login/logout transitions",
		},
		[]string{"transition"}, // "login", "logout"
	)
)

// ObserveRequest records duration and status for a completed gateway request.
func ObserveRequest(method, path string, status int, duration time.Duration) {
	RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	RequestsByStatus.WithLabelValues(method, strconv.Itoa(status)).Inc()
}
