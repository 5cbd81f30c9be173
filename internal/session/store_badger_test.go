// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package session

import (
	"errors"
	"testing"
)

func newTestBadgerStore(t *testing.T) *BadgerStore {
	t.Helper()

	store, err := OpenBadgerStore(t.TempDir())
	if err != nil {
		t.Fatalf("open badger store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestBadgerStoreRoundTrip(t *testing.T) {
	store := newTestBadgerStore(t)

	if _, _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Load on empty store = %v, want ErrNoSession", err)
	}

	if err := store.Save("tok-abc", Identity{ID: "42", DisplayName: "Maya"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	token, identity, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if token != "tok-abc" {
		t.Errorf("token = %q, want tok-abc", token)
	}
	if identity == nil || identity.ID != "42" || identity.DisplayName != "Maya" {
		t.Errorf("identity = %+v", identity)
	}
}

func TestBadgerStoreClearRemovesBothKeys(t *testing.T) {
	store := newTestBadgerStore(t)

	if err := store.Save("tok", Identity{ID: "1", DisplayName: "A"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if _, _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Errorf("Load after Clear = %v, want ErrNoSession", err)
	}

	// Clearing an already-empty store is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear on empty store: %v", err)
	}
}

func TestBadgerStoreSaveOverwrites(t *testing.T) {
	store := newTestBadgerStore(t)

	if err := store.Save("old", Identity{ID: "1", DisplayName: "A"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save("new", Identity{ID: "2", DisplayName: "B"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	token, identity, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if token != "new" || identity.ID != "2" {
		t.Errorf("got token=%q identity=%+v, want the replacement session", token, identity)
	}
}
