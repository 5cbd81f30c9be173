// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

// Package refresh keeps the session token fresh in the background. The
// refresher is a suture service: it sleeps until shortly before the
// current token expires, rotates it, and goes back to sleep. Rotation
// failures are logged and retried, never fatal; a failed refresh
// eventually surfaces as a 401 which the gateway turns into a clean
// sign-out.
package refresh

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"

	"github.com/curator-ai/curatorctl/internal/logging"
	"github.com/curator-ai/curatorctl/internal/session"
)

// RotateFunc refreshes the current token and installs the replacement.
type RotateFunc func(ctx context.Context) error

// Service rotates the session token ahead of expiry.
type Service struct {
	carrier *session.Carrier
	rotate  RotateFunc
	leeway  time.Duration
	logger  zerolog.Logger

	// idlePoll is how often the loop re-checks while signed out or
	// while holding a token without a readable expiry claim.
	idlePoll time.Duration

	// minInterval floors the sleep so an already-expired token cannot
	// spin the loop.
	minInterval time.Duration
}

var _ suture.Service = (*Service)(nil)

// New creates a refresher. Leeway is how long before expiry the rotation
// runs.
func New(carrier *session.Carrier, rotate RotateFunc, leeway time.Duration) *Service {
	if leeway <= 0 {
		leeway = 2 * time.Minute
	}
	return &Service{
		carrier:     carrier,
		rotate:      rotate,
		leeway:      leeway,
		logger:      logging.With().Str("component", "refresh").Logger(),
		idlePoll:    30 * time.Second,
		minInterval: 10 * time.Second,
	}
}

// Serve runs the refresh loop until the context is cancelled.
func (s *Service) Serve(ctx context.Context) error {
	for {
		timer := time.NewTimer(s.nextWait())
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		if !s.carrier.Authenticated() {
			continue
		}
		if err := s.rotate(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn().Err(err).Msg("Token rotation failed, will retry")
			continue
		}
		s.logger.Debug().Msg("Token rotated")
	}
}

// nextWait computes the sleep until the next rotation attempt.
func (s *Service) nextWait() time.Duration {
	expiry, ok := s.carrier.TokenExpiry()
	if !ok {
		return s.idlePoll
	}
	wait := time.Until(expiry) - s.leeway
	if wait < s.minInterval {
		return s.minInterval
	}
	return wait
}

// String names the service in supervisor logs.
func (s *Service) String() string {
	return "token-refresher"
}

// NewSupervisor builds the root supervisor with events routed through
// the shared structured logger.
func NewSupervisor() *suture.Supervisor {
	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}
	return suture.New("curatorctl", suture.Spec{
		EventHook: handler.MustHook(),
	})
}
