// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/curator-ai/curatorctl/internal/apitest"
	"github.com/curator-ai/curatorctl/internal/config"
	"github.com/curator-ai/curatorctl/internal/gateway"
	"github.com/curator-ai/curatorctl/internal/models"
	"github.com/curator-ai/curatorctl/internal/session"
)

func newTestApp(t *testing.T) (*apitest.Server, *App) {
	t.Helper()

	srv := apitest.New(t)
	cfg := config.Default()
	cfg.API.BaseURL = srv.URL
	carrier := session.NewCarrier(session.NewMemStore())
	gw := gateway.New(srv.URL, carrier, gateway.Options{})
	return srv, New(cfg, carrier, gw)
}

func signIn(t *testing.T, a *App) {
	t.Helper()
	if _, err := a.SignIn(context.Background(), "casey", "secret"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
}

func TestSignInInstallsSession(t *testing.T) {
	t.Parallel()

	srv, a := newTestApp(t)
	signIn(t, a)

	token, ok := a.Carrier().Token()
	if !ok || token != srv.Token {
		t.Errorf("Token() = %q, %v, want fixture token", token, ok)
	}
	identity, ok := a.Carrier().Identity()
	if !ok || identity.ID != "42" {
		t.Errorf("Identity() = %+v, %v, want ID 42", identity, ok)
	}
}

func TestSignOutClearsSessionDespiteRemoteFailure(t *testing.T) {
	t.Parallel()

	srv, a := newTestApp(t)
	signIn(t, a)

	srv.Override(http.MethodPost, "/api/auth/logout", func(w http.ResponseWriter, _ *http.Request) {
		apitest.WriteError(w, http.StatusInternalServerError, "session store down")
	})

	if err := a.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
	if a.Carrier().Authenticated() {
		t.Error("Authenticated() = true after SignOut")
	}
}

func TestWatchlistViewEnrichesEntries(t *testing.T) {
	t.Parallel()

	_, a := newTestApp(t)
	signIn(t, a)
	ctx := context.Background()

	for _, id := range []string{"603", "550"} {
		if _, err := a.History.AddToWatchlist(ctx, id); err != nil {
			t.Fatalf("AddToWatchlist(%s) error = %v", id, err)
		}
	}

	entries, err := a.WatchlistView(ctx)
	if err != nil {
		t.Fatalf("WatchlistView() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("WatchlistView() returned %d entries, want 2", len(entries))
	}
	for i, e := range entries {
		if e.Movie == nil {
			t.Errorf("entries[%d].Movie = nil, want detail", i)
		}
	}
	if entries[0].Item.ContentID != "603" {
		t.Errorf("entries[0].ContentID = %q, want %q: order must match the raw list", entries[0].Item.ContentID, "603")
	}
}

func TestWatchlistViewIsolatesDetailFailures(t *testing.T) {
	t.Parallel()

	_, a := newTestApp(t)
	signIn(t, a)
	ctx := context.Background()

	// 999 has no catalog entry, so its detail fetch 404s.
	for _, id := range []string{"603", "999", "550"} {
		if _, err := a.History.AddToWatchlist(ctx, id); err != nil {
			t.Fatalf("AddToWatchlist(%s) error = %v", id, err)
		}
	}

	entries, err := a.WatchlistView(ctx)
	if err != nil {
		t.Fatalf("WatchlistView() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("WatchlistView() returned %d entries, want 3: failures must not shrink the list", len(entries))
	}
	if entries[0].Movie == nil || entries[2].Movie == nil {
		t.Error("Healthy entries lost their detail")
	}
	if entries[1].Movie != nil {
		t.Error("entries[1].Movie != nil, want nil for failed fetch")
	}
}

func TestReviewsViewDefaultsToSelf(t *testing.T) {
	t.Parallel()

	_, a := newTestApp(t)
	signIn(t, a)
	ctx := context.Background()

	if _, err := a.History.AddReview(ctx, models.ReviewRequest{
		UserID: "42", ContentID: "603", Rating: 9,
	}); err != nil {
		t.Fatalf("AddReview() error = %v", err)
	}

	entries, err := a.ReviewsView(ctx, "")
	if err != nil {
		t.Fatalf("ReviewsView() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("ReviewsView() returned %d entries, want 1", len(entries))
	}
	if entries[0].Movie == nil || entries[0].Movie.Title != "The Matrix" {
		t.Errorf("entries[0].Movie = %+v, want The Matrix detail", entries[0].Movie)
	}
}

func TestFollowingViewEnrichesProfiles(t *testing.T) {
	t.Parallel()

	_, a := newTestApp(t)
	signIn(t, a)
	ctx := context.Background()

	if err := a.Social.Follow(ctx, 77); err != nil {
		t.Fatalf("Follow() error = %v", err)
	}

	entries, err := a.FollowingView(ctx, 0)
	if err != nil {
		t.Fatalf("FollowingView() error = %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("FollowingView() returned %d entries, want 1", len(entries))
	}
	if entries[0].Profile == nil || entries[0].Profile.Username != "robin" {
		t.Errorf("entries[0].Profile = %+v, want robin's profile", entries[0].Profile)
	}
}

func TestWatchlistToggleRoundtrip(t *testing.T) {
	t.Parallel()

	_, a := newTestApp(t)
	signIn(t, a)
	ctx := context.Background()

	ctl := a.WatchlistToggle(nil)

	ctl.Seed(ctx, "603")
	if ctl.IsMember("603") {
		t.Fatal("IsMember(603) = true before toggling")
	}

	if err := ctl.Toggle(ctx, "603"); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !ctl.IsMember("603") {
		t.Error("IsMember(603) = false after add toggle")
	}

	status, err := a.History.CheckWatchlist(ctx, "603")
	if err != nil {
		t.Fatalf("CheckWatchlist() error = %v", err)
	}
	if !status.InWatchlist {
		t.Error("Server disagrees with local membership after add")
	}

	if err := ctl.Toggle(ctx, "603"); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if ctl.IsMember("603") {
		t.Error("IsMember(603) = true after remove toggle")
	}
}

func TestFollowToggleSeedsFromFollowingList(t *testing.T) {
	t.Parallel()

	_, a := newTestApp(t)
	signIn(t, a)
	ctx := context.Background()

	if err := a.Social.Follow(ctx, 77); err != nil {
		t.Fatalf("Follow() error = %v", err)
	}

	ctl := a.FollowToggle(nil)
	ctl.Seed(ctx, "77")
	if !ctl.IsMember("77") {
		t.Error("Seed did not detect existing follow edge")
	}

	ctl.Seed(ctx, "88")
	if ctl.IsMember("88") {
		t.Error("Seed invented a follow edge for 88")
	}
}

func TestFollowToggleSelfIsNoOp(t *testing.T) {
	t.Parallel()

	srv, a := newTestApp(t)
	signIn(t, a)

	ctl := a.FollowToggle(nil)
	if err := ctl.Toggle(context.Background(), "42"); err != nil {
		t.Fatalf("Toggle(self) error = %v, want silent no-op", err)
	}
	if n := srv.RequestCount(http.MethodPost, "/api/social/follow/42"); n != 0 {
		t.Errorf("Self-toggle issued %d follow requests, want 0", n)
	}
}
