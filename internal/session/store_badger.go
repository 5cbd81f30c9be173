// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package session

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// Keys for BadgerDB storage. These are the only two keys the store owns.
const (
	tokenKey    = "session:token"
	identityKey = "session:identity"
)

// BadgerStore implements Store using BadgerDB for durable storage. Both
// session keys are written in a single transaction and deleted in a single
// transaction, so a crash can never leave one behind without the other.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens (or creates) the session database at dir.
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // badger's own logger is too chatty for a CLI

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open session store at %s: %w", dir, err)
	}
	return &BadgerStore{db: db}, nil
}

// NewBadgerStore wraps an already-open BadgerDB handle.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// Save writes token and identity in one transaction.
func (s *BadgerStore) Save(token string, identity Identity) error {
	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(tokenKey), []byte(token)); err != nil {
			return fmt.Errorf("set token: %w", err)
		}
		if err := txn.Set([]byte(identityKey), data); err != nil {
			return fmt.Errorf("set identity: %w", err)
		}
		return nil
	})
}

// Load reads the persisted session. Either key missing means no session.
func (s *BadgerStore) Load() (string, *Identity, error) {
	var (
		token    string
		identity Identity
	)

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(tokenKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNoSession
		}
		if err != nil {
			return fmt.Errorf("get token: %w", err)
		}
		if err := item.Value(func(val []byte) error {
			token = string(val)
			return nil
		}); err != nil {
			return err
		}

		item, err = txn.Get([]byte(identityKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNoSession
		}
		if err != nil {
			return fmt.Errorf("get identity: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &identity)
		})
	})
	if err != nil {
		return "", nil, err
	}

	return token, &identity, nil
}

// Clear deletes both keys in one transaction.
func (s *BadgerStore) Clear() error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(tokenKey)); err != nil {
			return fmt.Errorf("delete token: %w", err)
		}
		if err := txn.Delete([]byte(identityKey)); err != nil {
			return fmt.Errorf("delete identity: %w", err)
		}
		return nil
	})
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
