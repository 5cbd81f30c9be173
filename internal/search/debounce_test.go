// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package search

import (
	"testing"
	"time"
)

func recvEmission(t *testing.T, d *Debouncer, within time.Duration) Emission {
	t.Helper()
	select {
	case e, ok := <-d.C():
		if !ok {
			t.Fatal("Emission channel closed unexpectedly")
		}
		return e
	case <-time.After(within):
		t.Fatal("Timed out waiting for emission")
	}
	return Emission{}
}

func expectNoEmission(t *testing.T, d *Debouncer, within time.Duration) {
	t.Helper()
	select {
	case e := <-d.C():
		t.Fatalf("Unexpected emission %+v", e)
	case <-time.After(within):
	}
}

func TestDebouncerEmitsAfterQuietWindow(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(20*time.Millisecond, 2)
	defer d.Close()

	d.Update("inception")

	e := recvEmission(t, d, time.Second)
	if e.Cleared {
		t.Fatal("Expected query emission, got cleared")
	}
	if e.Query != "inception" {
		t.Errorf("Query = %q, want %q", e.Query, "inception")
	}
	if e.Seq != 1 {
		t.Errorf("Seq = %d, want 1", e.Seq)
	}
}

func TestDebouncerCoalescesRapidUpdates(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(40*time.Millisecond, 2)
	defer d.Close()

	// Each update lands inside the previous window, so only the final
	// value may emit.
	for _, raw := range []string{"in", "inc", "ince", "incep"} {
		d.Update(raw)
		time.Sleep(5 * time.Millisecond)
	}

	e := recvEmission(t, d, time.Second)
	if e.Query != "incep" {
		t.Errorf("Query = %q, want %q", e.Query, "incep")
	}
	if e.Seq != 1 {
		t.Errorf("Seq = %d, want 1: intermediate values must not emit", e.Seq)
	}
	expectNoEmission(t, d, 80*time.Millisecond)
}

func TestDebouncerMinimumLength(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(20*time.Millisecond, 2)
	defer d.Close()

	// Exactly at the minimum emits a query.
	d.Update("ab")
	e := recvEmission(t, d, time.Second)
	if e.Cleared || e.Query != "ab" {
		t.Fatalf("Two-rune input: got %+v, want query emission", e)
	}

	// Below the minimum clears immediately, without waiting the window.
	start := time.Now()
	d.Update("a")
	e = recvEmission(t, d, time.Second)
	if !e.Cleared {
		t.Fatalf("One-rune input: got %+v, want cleared", e)
	}
	if elapsed := time.Since(start); elapsed > 15*time.Millisecond {
		t.Errorf("Cleared emission took %v, want immediate", elapsed)
	}
	if e.Seq <= 1 {
		t.Errorf("Cleared Seq = %d, want greater than prior emission", e.Seq)
	}
}

func TestDebouncerClearCancelsPendingQuery(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(30*time.Millisecond, 2)
	defer d.Close()

	d.Update("batman")
	d.Update("") // clears before the window elapses

	e := recvEmission(t, d, time.Second)
	if !e.Cleared {
		t.Fatalf("Got %+v, want cleared", e)
	}
	expectNoEmission(t, d, 60*time.Millisecond)
}

func TestDebouncerSequenceStrictlyIncreases(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(5*time.Millisecond, 2)
	defer d.Close()

	queries := []string{"aa", "bb", "cc", "dd"}
	var last uint64
	for _, q := range queries {
		d.Update(q)
		e := recvEmission(t, d, time.Second)
		if e.Seq <= last {
			t.Fatalf("Seq %d after %d: must strictly increase", e.Seq, last)
		}
		last = e.Seq
	}
	if got := d.Latest(); got != last {
		t.Errorf("Latest() = %d, want %d", got, last)
	}
}

func TestDebouncerUpdateAfterCloseIgnored(t *testing.T) {
	t.Parallel()

	d := NewDebouncer(5*time.Millisecond, 2)
	d.Close()
	d.Update("ignored")

	if _, ok := <-d.C(); ok {
		t.Error("Channel should be closed with no emissions")
	}
}
