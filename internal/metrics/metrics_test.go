// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsByStatus.WithLabelValues("GET", "200"))

	ObserveRequest("GET", "/api/content/search", 200, 42*time.Millisecond)

	after := testutil.ToFloat64(RequestsByStatus.WithLabelValues("GET", "200"))
	if after != before+1 {
		t.Errorf("RequestsByStatus = %v, want %v", after, before+1)
	}
}

func TestCountersIncrement(t *testing.T) {
	before := testutil.ToFloat64(ToggleRollbacks.WithLabelValues("watchlist"))
	ToggleRollbacks.WithLabelValues("watchlist").Inc()
	after := testutil.ToFloat64(ToggleRollbacks.WithLabelValues("watchlist"))
	if after != before+1 {
		t.Errorf("ToggleRollbacks = %v, want %v", after, before+1)
	}

	sBefore := testutil.ToFloat64(StaleSearchResponses)
	StaleSearchResponses.Inc()
	if got := testutil.ToFloat64(StaleSearchResponses); got != sBefore+1 {
		t.Errorf("StaleSearchResponses = %v, want %v", got, sBefore+1)
	}
}
