// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package app

import (
	"context"
	"strconv"

	"github.com/curator-ai/curatorctl/internal/toggle"
)

// WatchlistToggle builds an optimistic controller for watchlist
// membership. The watchlist has a dedicated check endpoint, so seeding
// reads the real state.
func (a *App) WatchlistToggle(notifier toggle.Notifier) *toggle.Controller {
	return toggle.New(toggle.Config{
		Relation:      "watchlist",
		Authenticated: a.carrier.Authenticated,
		Add: func(ctx context.Context, contentID string) error {
			_, err := a.History.AddToWatchlist(ctx, contentID)
			return err
		},
		Remove: a.History.RemoveFromWatchlist,
		Check: func(ctx context.Context, contentID string) (bool, error) {
			status, err := a.History.CheckWatchlist(ctx, contentID)
			if err != nil {
				return false, err
			}
			return status.InWatchlist, nil
		},
		Notifier: notifier,
	})
}

// FollowToggle builds an optimistic controller for follow edges. There
// is no membership-check endpoint, so seeding scans the signed-in
// user's following list. Toggling your own id is a silent no-op.
func (a *App) FollowToggle(notifier toggle.Notifier) *toggle.Controller {
	selfID := ""
	if identity, ok := a.carrier.Identity(); ok {
		selfID = identity.ID
	}
	return toggle.New(toggle.Config{
		Relation:      "follow",
		SelfID:        selfID,
		Authenticated: a.carrier.Authenticated,
		Add: func(ctx context.Context, targetID string) error {
			id, err := strconv.ParseInt(targetID, 10, 64)
			if err != nil {
				return err
			}
			return a.Social.Follow(ctx, id)
		},
		Remove: func(ctx context.Context, targetID string) error {
			id, err := strconv.ParseInt(targetID, 10, 64)
			if err != nil {
				return err
			}
			return a.Social.Unfollow(ctx, id)
		},
		Check: func(ctx context.Context, targetID string) (bool, error) {
			self, err := a.selfIDInt()
			if err != nil {
				return false, err
			}
			following, err := a.Social.Following(ctx, self)
			if err != nil {
				return false, err
			}
			want, err := strconv.ParseInt(targetID, 10, 64)
			if err != nil {
				return false, err
			}
			for _, u := range following {
				if u.ID == want {
					return true, nil
				}
			}
			return false, nil
		},
		Notifier: notifier,
	})
}
