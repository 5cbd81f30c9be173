// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package session

import "sync"

// Store persists the session across process restarts. Exactly two values
// are held: the opaque token and the serialized identity. Save writes both
// together; Clear removes both together.
type Store interface {
	Save(token string, identity Identity) error
	Load() (string, *Identity, error)
	Clear() error
}

// MemStore is an in-memory Store. Sessions do not survive the process;
// used when no session path is configured, and in tests.
type MemStore struct {
	mu       sync.Mutex
	token    string
	identity *Identity
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Save stores both values.
func (s *MemStore) Save(token string, identity Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	id := identity
	s.identity = &id
	return nil
}

// Load returns the stored session or ErrNoSession.
func (s *MemStore) Load() (string, *Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", nil, ErrNoSession
	}
	id := *s.identity
	return s.token, &id, nil
}

// Clear removes both values.
func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.identity = nil
	return nil
}
