// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package gateway

import (
	"context"
	"errors"
	"io"
	"net/url"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/curator-ai/curatorctl/internal/logging"
	"github.com/curator-ai/curatorctl/internal/metrics"
)

// BreakerGateway wraps a Gateway with a circuit breaker so a struggling
// API backend sheds load instead of accumulating timed-out requests.
//
// The breaker uses real time for its interval and timeout calculations;
// tests exercise the wrapped gateway directly when determinism matters.
type BreakerGateway struct {
	inner Doer
	cb    *gobreaker.CircuitBreaker[any]
	name  string
}

// NewBreakerGateway creates a circuit-breaker wrapper around inner.
// Configuration:
//   - Max 3 concurrent requests in half-open state
//   - 1 minute measurement window in closed state
//   - 30 seconds before transitioning from open to half-open
//   - Opens after 60% failure rate with minimum 10 requests
func NewBreakerGateway(inner Doer) *BreakerGateway {
	const cbName = "curator-api"

	metrics.CircuitBreakerState.WithLabelValues(cbName).Set(0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("breaker", name).
				Str("from", breakerStateName(from)).
				Str("to", breakerStateName(to)).
				Msg("circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(breakerStateValue(to))
		},

		// A 401 or a 4xx is the caller's problem, not backend health;
		// only timeouts, transport failures, and 5xx count as failures.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			kind, ok := KindOf(err)
			if !ok {
				return false
			}
			return kind == KindUnauthorized || kind == KindClientRequestError || kind == KindMalformedResponse
		},
	})

	return &BreakerGateway{inner: inner, cb: cb, name: cbName}
}

// Do executes a JSON request through the breaker.
func (b *BreakerGateway) Do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	return b.execute(func() error {
		return b.inner.Do(ctx, method, path, query, body, result)
	})
}

// DoMultipart executes a multipart request through the breaker.
func (b *BreakerGateway) DoMultipart(ctx context.Context, method, path, field, filename string, content io.Reader, result any) error {
	return b.execute(func() error {
		return b.inner.DoMultipart(ctx, method, path, field, filename, content, result)
	})
}

// execute runs fn under breaker protection, translating breaker rejections
// into the gateway error taxonomy.
func (b *BreakerGateway) execute(fn func() error) error {
	_, err := b.cb.Execute(func() (any, error) {
		return nil, fn()
	})
	if err == nil {
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		return nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		return &APIError{Kind: KindNetworkUnreachable, Err: err}
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
	return err
}

func breakerStateName(s gobreaker.State) string {
	switch s {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

func breakerStateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
