// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

// Package session holds the process-wide credential state: the access token
// and the identity of the signed-in user. The carrier is the single writer
// of this state; the gateway reads it to authenticate outgoing requests.
//
// Invariant: token and identity are always set together and cleared
// together. A session with one but not the other never exists.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/curator-ai/curatorctl/internal/metrics"
)

// ErrNoSession is returned by stores when no session is persisted.
var ErrNoSession = errors.New("no persisted session")

// Identity is the signed-in user as known to the client.
type Identity struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// Carrier owns the current session. All methods are safe for concurrent
// use. Login and Logout are idempotent.
type Carrier struct {
	mu       sync.RWMutex
	token    string
	identity *Identity
	store    Store
}

// NewCarrier creates a carrier backed by the given store and restores any
// persisted session, so a new process resumes where the previous one left
// off. A store read failure is not fatal: the carrier starts signed out.
func NewCarrier(store Store) *Carrier {
	c := &Carrier{store: store}

	token, identity, err := store.Load()
	if err != nil {
		if !errors.Is(err, ErrNoSession) {
			// Corrupt or unreadable persisted state; start signed out.
			_ = store.Clear()
		}
		return c
	}

	c.token = token
	c.identity = identity
	return c
}

// Token returns the current access token, if any.
func (c *Carrier) Token() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token, c.token != ""
}

// Identity returns the current identity, if any.
func (c *Carrier) Identity() (Identity, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.identity == nil {
		return Identity{}, false
	}
	return *c.identity, true
}

// Authenticated reports whether a session is present.
func (c *Carrier) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token != ""
}

// Login stores the token and identity together and persists both
// atomically. Calling Login again replaces the current session.
func (c *Carrier) Login(token string, identity Identity) error {
	if token == "" {
		return errors.New("login requires a non-empty token")
	}
	if identity.ID == "" {
		return errors.New("login requires an identity")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Save(token, identity); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	c.token = token
	id := identity
	c.identity = &id
	metrics.SessionTransitions.WithLabelValues("login").Inc()
	return nil
}

// Logout clears the session and its durable copy. Calling Logout on an
// already signed-out carrier is a no-op.
func (c *Carrier) Logout() error {
	_, err := c.Invalidate()
	return err
}

// Invalidate clears the session and reports whether a session was actually
// present. The gateway uses the transition report to fire its
// session-invalidated hook exactly once even when several concurrent
// requests all observe a 401.
func (c *Carrier) Invalidate() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	had := c.token != ""
	c.token = ""
	c.identity = nil

	if err := c.store.Clear(); err != nil {
		return had, fmt.Errorf("clear persisted session: %w", err)
	}
	if had {
		metrics.SessionTransitions.WithLabelValues("logout").Inc()
	}
	return had, nil
}

// TokenExpiry reports the expiry time of the current access token, parsed
// from its exp claim without signature verification (the client never
// holds the signing key; the server remains the authority). Returns false
// when signed out or when the token carries no parseable expiry.
func (c *Carrier) TokenExpiry() (time.Time, bool) {
	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()

	if token == "" {
		return time.Time{}, false
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
