// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	gobreaker "github.com/sony/gobreaker/v2"
)

func TestBreakerOpensAfterRepeatedServerErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"down"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	bg := NewBreakerGateway(New(server.URL, newTestCarrier(t, true), Options{}))

	// Ten consecutive 5xx responses exceed the 60% failure threshold at
	// the minimum request count.
	for i := 0; i < 10; i++ {
		err := bg.Do(context.Background(), http.MethodGet, "/api/content/latest", nil, nil, nil)
		if !IsKind(err, KindServerError) {
			t.Fatalf("request %d: error = %v, want KindServerError", i, err)
		}
	}

	err := bg.Do(context.Background(), http.MethodGet, "/api/content/latest", nil, nil, nil)
	if !IsKind(err, KindNetworkUnreachable) {
		t.Fatalf("error after trip = %v, want KindNetworkUnreachable", err)
	}
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected gobreaker.ErrOpenState in chain, got %v", err)
	}
}

func TestBreakerIgnoresCallerSideFailures(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"no such movie"}`, http.StatusNotFound)
	}))
	defer server.Close()

	bg := NewBreakerGateway(New(server.URL, newTestCarrier(t, true), Options{}))

	// 4xx responses are the caller's problem and must not trip the breaker.
	for i := 0; i < 20; i++ {
		err := bg.Do(context.Background(), http.MethodGet, "/api/content/movies/999", nil, nil, nil)
		if !IsKind(err, KindClientRequestError) {
			t.Fatalf("request %d: error = %v, want KindClientRequestError", i, err)
		}
	}
}
