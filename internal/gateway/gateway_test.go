// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/curator-ai/curatorctl/internal/session"
)

func newTestCarrier(t *testing.T, authenticated bool) *session.Carrier {
	t.Helper()

	c := session.NewCarrier(session.NewMemStore())
	if authenticated {
		if err := c.Login("test-token", session.Identity{ID: "7", DisplayName: "Uday"}); err != nil {
			t.Fatalf("Login: %v", err)
		}
	}
	return c
}

func TestDoInjectsCredentialHeaders(t *testing.T) {
	t.Parallel()

	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	g := New(server.URL, newTestCarrier(t, true), Options{})
	if err := g.Do(context.Background(), http.MethodGet, "/api/auth/me", nil, nil, nil); err != nil {
		t.Fatalf("Do: %v", err)
	}

	if auth := got.Get("Authorization"); auth != "Bearer test-token" {
		t.Errorf("Authorization = %q", auth)
	}
	if uid := got.Get("X-User-ID"); uid != "7" {
		t.Errorf("X-User-ID = %q", uid)
	}
	if ct := got.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rid := got.Get("X-Request-ID"); rid == "" {
		t.Error("X-Request-ID missing")
	}
}

func TestDoOmitsCredentialHeadersWhenSignedOut(t *testing.T) {
	t.Parallel()

	var got http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	g := New(server.URL, newTestCarrier(t, false), Options{})
	if err := g.Do(context.Background(), http.MethodGet, "/api/health", nil, nil, nil); err != nil {
		t.Fatalf("Do: %v", err)
	}

	if auth := got.Get("Authorization"); auth != "" {
		t.Errorf("Authorization should be absent, got %q", auth)
	}
	if uid := got.Get("X-User-ID"); uid != "" {
		t.Errorf("X-User-ID should be absent, got %q", uid)
	}
}

func TestDoEncodesQueryAndDecodesResult(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if q := r.URL.Query().Get("query"); q != "heat" {
			t.Errorf("query param = %q, want heat", q)
		}
		if l := r.URL.Query().Get("limit"); l != "10" {
			t.Errorf("limit param = %q, want 10", l)
		}
		_, _ = w.Write([]byte(`{"movies":[{"id":1,"title":"Heat"}]}`))
	}))
	defer server.Close()

	g := New(server.URL, newTestCarrier(t, true), Options{})

	q := url.Values{}
	q.Set("query", "heat")
	q.Set("limit", "10")

	var result struct {
		Movies []struct {
			ID    int64  `json:"id"`
			Title string `json:"title"`
		} `json:"movies"`
	}
	if err := g.Do(context.Background(), http.MethodGet, "/api/content/search", q, nil, &result); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if len(result.Movies) != 1 || result.Movies[0].Title != "Heat" {
		t.Errorf("decoded result = %+v", result)
	}
}

func TestDoClassifiesFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		handler  http.HandlerFunc
		wantKind Kind
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":"db down"}`, http.StatusInternalServerError)
			},
			wantKind: KindServerError,
		},
		{
			name: "client request error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":"bad rating"}`, http.StatusBadRequest)
			},
			wantKind: KindClientRequestError,
		},
		{
			name: "malformed response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"movies": not-json`))
			},
			wantKind: KindMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(tt.handler)
			defer server.Close()

			g := New(server.URL, newTestCarrier(t, true), Options{})
			var result map[string]any
			err := g.Do(context.Background(), http.MethodGet, "/api/test", nil, nil, &result)
			if !IsKind(err, tt.wantKind) {
				t.Errorf("error = %v, want kind %v", err, tt.wantKind)
			}
		})
	}
}

func TestDoSurfacesTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		server.Close()
	}()

	g := New(server.URL, newTestCarrier(t, true), Options{Timeout: 50 * time.Millisecond})
	err := g.Do(context.Background(), http.MethodGet, "/api/slow", nil, nil, nil)
	if !IsKind(err, KindNetworkTimeout) {
		t.Errorf("error = %v, want KindNetworkTimeout", err)
	}
}

func TestDoSurfacesUnreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	g := New(server.URL, newTestCarrier(t, true), Options{})
	err := g.Do(context.Background(), http.MethodGet, "/api/any", nil, nil, nil)
	if !IsKind(err, KindNetworkUnreachable) {
		t.Errorf("error = %v, want KindNetworkUnreachable", err)
	}
}

func TestUnauthorizedInvalidatesSessionOnce(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	carrier := newTestCarrier(t, true)

	var hookCalls atomic.Int64
	g := New(server.URL, carrier, Options{
		OnUnauthorized: func() { hookCalls.Add(1) },
	})

	// A burst of concurrent requests all receiving 401 must produce a
	// single session-invalidated transition.
	const concurrent = 12
	var wg sync.WaitGroup
	for i := 0; i < concurrent; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := g.Do(context.Background(), http.MethodGet, "/api/history/watchlist/my", nil, nil, nil)
			if !IsKind(err, KindUnauthorized) {
				t.Errorf("error = %v, want KindUnauthorized", err)
			}
		}()
	}
	wg.Wait()

	if carrier.Authenticated() {
		t.Error("carrier must be signed out after 401")
	}
	if got := hookCalls.Load(); got != 1 {
		t.Errorf("OnUnauthorized fired %d times, want exactly 1", got)
	}
}

func TestDoMultipartUploadsFile(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("avatar")
		if err != nil {
			t.Errorf("form file: %v", err)
			http.Error(w, "missing file", http.StatusBadRequest)
			return
		}
		defer func() { _ = file.Close() }()
		if header.Filename != "me.png" {
			t.Errorf("filename = %q", header.Filename)
		}
		_, _ = w.Write([]byte(`{"avatarUrl":"/static/avatars/7.png"}`))
	}))
	defer server.Close()

	g := New(server.URL, newTestCarrier(t, true), Options{})

	var result struct {
		AvatarURL string `json:"avatarUrl"`
	}
	err := g.DoMultipart(context.Background(), http.MethodPost, "/api/users/7/avatar",
		"avatar", "me.png", strings.NewReader("png-bytes"), &result)
	if err != nil {
		t.Fatalf("DoMultipart: %v", err)
	}
	if result.AvatarURL != "/static/avatars/7.png" {
		t.Errorf("AvatarURL = %q", result.AvatarURL)
	}
}

func TestDoNoContentSkipsDecode(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	g := New(server.URL, newTestCarrier(t, true), Options{})
	var result map[string]any
	if err := g.Do(context.Background(), http.MethodDelete, "/api/history/watchlist/55", nil, nil, &result); err != nil {
		t.Fatalf("Do: %v", err)
	}
}
