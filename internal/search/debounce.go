// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

// Package search converts a rapidly-changing text input into a rate-limited
// stream of queries and applies responses with stale suppression: every
// emitted query carries a strictly increasing sequence number, and a
// response is applied only when its number still equals the highest issued
// one. Results therefore always reflect the most recent query, regardless
// of network completion order.
package search

import (
	"sync"
	"time"
	"unicode/utf8"
)

// Emission is one output of the debouncer: either a query to run or a
// cleared signal telling the consumer to reset results and treat any
// in-flight response as stale.
type Emission struct {
	Query   string
	Seq     uint64
	Cleared bool
}

// Debouncer delays emitting a changing input value until it has stayed
// unchanged for a fixed window. Inputs shorter than the minimum length
// emit a cleared signal immediately instead of scheduling a query.
type Debouncer struct {
	window time.Duration
	minLen int

	mu     sync.Mutex
	timer  *time.Timer
	seq    uint64
	out    chan Emission
	closed bool
}

// NewDebouncer creates a debouncer with the given window and minimum
// query length (in runes).
func NewDebouncer(window time.Duration, minLen int) *Debouncer {
	if window <= 0 {
		window = 300 * time.Millisecond
	}
	if minLen < 1 {
		minLen = 1
	}
	return &Debouncer{
		window: window,
		minLen: minLen,
		out:    make(chan Emission, 16),
	}
}

// Update feeds one raw input change. A pending emission is cancelled and,
// for input at or above the minimum length, a new one is scheduled after
// the window. Shorter input emits the cleared signal at once so the
// consumer empties its results without waiting out the window.
func (d *Debouncer) Update(raw string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	if utf8.RuneCountInString(raw) < d.minLen {
		d.seq++
		d.send(Emission{Cleared: true, Seq: d.seq})
		return
	}

	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.closed {
			return
		}
		d.seq++
		d.send(Emission{Query: raw, Seq: d.seq})
	})
}

// send delivers an emission without blocking the input path. Caller must
// hold d.mu. The channel buffer outpaces any realistic typing rate; if a
// consumer has stalled entirely, the oldest queued emission is discarded
// since its sequence number is already stale.
func (d *Debouncer) send(e Emission) {
	for {
		select {
		case d.out <- e:
			return
		default:
			select {
			case <-d.out:
			default:
			}
		}
	}
}

// C returns the emission stream.
func (d *Debouncer) C() <-chan Emission {
	return d.out
}

// Latest returns the highest sequence number issued so far. Responses
// tagged with anything lower are stale.
func (d *Debouncer) Latest() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seq
}

// Close stops the debouncer and closes the emission stream. Further
// Update calls are ignored.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	close(d.out)
}
