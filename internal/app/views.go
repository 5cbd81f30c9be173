// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package app

import (
	"context"
	"strconv"

	"github.com/curator-ai/curatorctl/internal/enrich"
	"github.com/curator-ai/curatorctl/internal/models"
)

// WatchlistEntry is one watchlist row joined with its catalog detail.
// Movie is nil when the detail fetch failed; the row itself still
// renders from the raw item.
type WatchlistEntry struct {
	Item  models.WatchlistItem
	Movie *models.Movie
}

// ReviewEntry is one review joined with its catalog detail.
type ReviewEntry struct {
	Review models.Review
	Movie  *models.Movie
}

// SocialEntry is one follower/followee edge joined with the full
// profile. Profile is nil when the fetch failed.
type SocialEntry struct {
	User    models.FollowUser
	Profile *models.UserProfile
}

// fetchMovie resolves a string content id against the catalog.
func (a *App) fetchMovie(ctx context.Context, contentID string) (models.Movie, error) {
	id, err := strconv.ParseInt(contentID, 10, 64)
	if err != nil {
		return models.Movie{}, err
	}
	m, err := a.Content.Movie(ctx, id)
	if err != nil {
		return models.Movie{}, err
	}
	return *m, nil
}

// WatchlistView returns the signed-in user's watchlist with catalog
// details fetched concurrently. A failed detail fetch leaves that row's
// Movie nil; order and length always match the raw list.
func (a *App) WatchlistView(ctx context.Context) ([]WatchlistEntry, error) {
	self, err := a.selfID()
	if err != nil {
		return nil, err
	}
	items, err := a.History.UserWatchlist(ctx, self)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ContentID
	}
	details := enrich.Enrich(ctx, ids, a.fetchMovie)

	entries := make([]WatchlistEntry, len(items))
	for i, item := range items {
		entries[i] = WatchlistEntry{Item: item, Movie: details[i].Detail}
	}
	return entries, nil
}

// ReviewsView returns a user's reviews with catalog details. An empty
// userID means the signed-in user.
func (a *App) ReviewsView(ctx context.Context, userID string) ([]ReviewEntry, error) {
	if userID == "" {
		self, err := a.selfID()
		if err != nil {
			return nil, err
		}
		userID = self
	}
	reviews, err := a.History.UserReviews(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(reviews))
	for i, r := range reviews {
		ids[i] = r.ContentID
	}
	details := enrich.Enrich(ctx, ids, a.fetchMovie)

	entries := make([]ReviewEntry, len(reviews))
	for i, r := range reviews {
		entries[i] = ReviewEntry{Review: r, Movie: details[i].Detail}
	}
	return entries, nil
}

// MovieReviewsView returns all reviews for one movie.
func (a *App) MovieReviewsView(ctx context.Context, contentID string) ([]models.Review, error) {
	return a.History.MovieReviews(ctx, contentID)
}

// fetchProfile resolves a string user id to a full profile.
func (a *App) fetchProfile(ctx context.Context, userID string) (models.UserProfile, error) {
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return models.UserProfile{}, err
	}
	p, err := a.Users.Profile(ctx, id)
	if err != nil {
		return models.UserProfile{}, err
	}
	return *p, nil
}

func (a *App) socialView(ctx context.Context, users []models.FollowUser) []SocialEntry {
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = strconv.FormatInt(u.ID, 10)
	}
	details := enrich.Enrich(ctx, ids, a.fetchProfile)

	entries := make([]SocialEntry, len(users))
	for i, u := range users {
		entries[i] = SocialEntry{User: u, Profile: details[i].Detail}
	}
	return entries
}

// FollowersView returns a user's followers with full profiles. Zero
// userID means the signed-in user.
func (a *App) FollowersView(ctx context.Context, userID int64) ([]SocialEntry, error) {
	if userID == 0 {
		self, err := a.selfIDInt()
		if err != nil {
			return nil, err
		}
		userID = self
	}
	users, err := a.Social.Followers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return a.socialView(ctx, users), nil
}

// FollowingView returns the users a user follows, with full profiles.
// Zero userID means the signed-in user.
func (a *App) FollowingView(ctx context.Context, userID int64) ([]SocialEntry, error) {
	if userID == 0 {
		self, err := a.selfIDInt()
		if err != nil {
			return nil, err
		}
		userID = self
	}
	users, err := a.Social.Following(ctx, userID)
	if err != nil {
		return nil, err
	}
	return a.socialView(ctx, users), nil
}

// FeedView returns the signed-in user's activity feed.
func (a *App) FeedView(ctx context.Context) ([]models.FeedItem, error) {
	return a.Social.Feed(ctx)
}
