// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

// Package toggle implements optimistic binary-membership mutation with
// rollback: the local state flips immediately so the UI reflects intent
// with zero latency, the remote mutation runs behind it, and a failure
// reverts the flip and surfaces one user-visible notice.
//
// Each relation runs the state machine
//
//	Idle -> Pending -> Committed | RolledBack
//
// with at most one in-flight mutation per target.
package toggle

import (
	"context"
	"errors"
	"sync"

	"github.com/curator-ai/curatorctl/internal/metrics"
)

// State is the lifecycle position of one target's relation.
type State int

const (
	// StateIdle means no mutation has been attempted yet.
	StateIdle State = iota

	// StatePending means a mutation is in flight; further toggles for
	// the same target are rejected until it resolves.
	StatePending

	// StateCommitted means the last mutation was confirmed remotely.
	StateCommitted

	// StateRolledBack means the last mutation failed and the local
	// value was reverted.
	StateRolledBack
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateCommitted:
		return "committed"
	case StateRolledBack:
		return "rolled-back"
	default:
		return "unknown"
	}
}

// ErrPending is returned when a toggle arrives while a mutation for the
// same target is still in flight. No queueing, no coalescing.
var ErrPending = errors.New("mutation already in flight for target")

// ErrUnauthenticated is returned when the caller has no session.
var ErrUnauthenticated = errors.New("toggle requires an authenticated session")

// Notifier receives the user-visible failure notice after a rollback.
type Notifier interface {
	Notify(action, targetID string, err error)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(action, targetID string, err error)

// Notify implements Notifier.
func (f NotifierFunc) Notify(action, targetID string, err error) {
	f(action, targetID, err)
}

// Config wires a Controller to one relation type.
type Config struct {
	// Relation names the relation ("watchlist", "follow") for metrics
	// and notices.
	Relation string

	// SelfID is the current user's own id. Toggling it is a silent
	// no-op, not an error.
	SelfID string

	// Authenticated reports whether a session exists. Optional; nil
	// means always authenticated.
	Authenticated func() bool

	// Add and Remove perform the remote membership mutations.
	Add    func(ctx context.Context, targetID string) error
	Remove func(ctx context.Context, targetID string) error

	// Check reads current remote membership for seeding. Optional: the
	// membership-read endpoint does not exist for every relation type.
	Check func(ctx context.Context, targetID string) (bool, error)

	// Notifier receives rollback notices. Optional.
	Notifier Notifier
}

// Controller tracks membership state for many targets of one relation
// type. Safe for concurrent use.
type Controller struct {
	cfg Config

	mu        sync.Mutex
	relations map[string]*relation
}

type relation struct {
	state    State
	isMember bool
}

// New creates a Controller for the given relation.
func New(cfg Config) *Controller {
	return &Controller{
		cfg:       cfg,
		relations: make(map[string]*relation),
	}
}

// rel returns the record for targetID, creating it in Idle if missing.
// Caller must hold c.mu.
func (c *Controller) rel(targetID string) *relation {
	r, ok := c.relations[targetID]
	if !ok {
		r = &relation{state: StateIdle}
		c.relations[targetID] = r
	}
	return r
}

// Seed performs one best-effort read of current remote membership. A
// failed read (or a relation type with no Check endpoint) defaults to
// "not a member" and surfaces no error: unknown is treated as absent
// rather than a hard failure. Seeding never overwrites a target that has
// already left Idle.
func (c *Controller) Seed(ctx context.Context, targetID string) {
	if c.cfg.Check == nil || targetID == c.cfg.SelfID {
		return
	}

	c.mu.Lock()
	if c.rel(targetID).state != StateIdle {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	isMember, err := c.cfg.Check(ctx, targetID)
	if err != nil {
		isMember = false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if r := c.rel(targetID); r.state == StateIdle {
		r.isMember = isMember
	}
}

// Toggle flips membership for targetID: optimistic local flip, remote
// mutation, rollback with one notice on failure.
func (c *Controller) Toggle(ctx context.Context, targetID string) error {
	if targetID == c.cfg.SelfID {
		return nil // self-toggle is a no-op, not an error
	}
	if c.cfg.Authenticated != nil && !c.cfg.Authenticated() {
		return ErrUnauthenticated
	}

	c.mu.Lock()
	r := c.rel(targetID)
	if r.state == StatePending {
		c.mu.Unlock()
		return ErrPending
	}

	prev := r.isMember
	desired := !prev
	r.isMember = desired // optimistic: UI sees the new value immediately
	r.state = StatePending
	c.mu.Unlock()

	var err error
	if desired {
		err = c.cfg.Add(ctx, targetID)
	} else {
		err = c.cfg.Remove(ctx, targetID)
	}

	c.mu.Lock()
	if err != nil {
		r.isMember = prev
		r.state = StateRolledBack
	} else {
		r.state = StateCommitted
	}
	c.mu.Unlock()

	if err != nil {
		metrics.ToggleRollbacks.WithLabelValues(c.cfg.Relation).Inc()
		if c.cfg.Notifier != nil {
			action := "add"
			if !desired {
				action = "remove"
			}
			c.cfg.Notifier.Notify(action, targetID, err)
		}
		return err
	}
	return nil
}

// IsMember returns the locally-believed membership for targetID.
func (c *Controller) IsMember(targetID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rel(targetID).isMember
}

// Pending reports whether a mutation is in flight for targetID.
func (c *Controller) Pending(targetID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rel(targetID).state == StatePending
}

// State returns the state-machine position for targetID.
func (c *Controller) State(targetID string) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rel(targetID).state
}
