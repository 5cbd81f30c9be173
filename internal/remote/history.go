// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/curator-ai/curatorctl/internal/gateway"
	"github.com/curator-ai/curatorctl/internal/models"
)

// HistoryAPI covers the /api/history endpoints: reviews plus the
// watchlist that lives under /api/history/watchlist. Content ids are
// strings here even though the catalog uses integers; Movie.ContentID
// converts.
type HistoryAPI interface {
	AddReview(ctx context.Context, req models.ReviewRequest) (*models.Review, error)
	UserReviews(ctx context.Context, userID string) ([]models.Review, error)
	MovieReviews(ctx context.Context, contentID string) ([]models.Review, error)
	UpdateReview(ctx context.Context, reviewID int64, req models.ReviewRequest) (*models.Review, error)
	DeleteReview(ctx context.Context, reviewID int64) error

	AddToWatchlist(ctx context.Context, contentID string) (*models.WatchlistItem, error)
	RemoveFromWatchlist(ctx context.Context, contentID string) error
	UserWatchlist(ctx context.Context, userID string) ([]models.WatchlistItem, error)
	CheckWatchlist(ctx context.Context, contentID string) (*models.WatchlistStatus, error)
}

// HistoryClient implements HistoryAPI over a gateway.
type HistoryClient struct {
	doer gateway.Doer
}

var _ HistoryAPI = (*HistoryClient)(nil)

// NewHistoryClient creates a history client.
func NewHistoryClient(doer gateway.Doer) *HistoryClient {
	return &HistoryClient{doer: doer}
}

// AddReview records a watch with rating and optional review text.
func (c *HistoryClient) AddReview(ctx context.Context, req models.ReviewRequest) (*models.Review, error) {
	var resp models.Review
	if err := c.doer.Do(ctx, http.MethodPost, "/api/history", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UserReviews lists one user's reviews, newest first.
func (c *HistoryClient) UserReviews(ctx context.Context, userID string) ([]models.Review, error) {
	var resp []models.Review
	path := "/api/history/user/" + url.PathEscape(userID)
	if err := c.doer.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// MovieReviews lists all reviews for one movie.
func (c *HistoryClient) MovieReviews(ctx context.Context, contentID string) ([]models.Review, error) {
	var resp []models.Review
	path := "/api/history/movie/" + url.PathEscape(contentID)
	if err := c.doer.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateReview replaces the rating and text of an existing review.
func (c *HistoryClient) UpdateReview(ctx context.Context, reviewID int64, req models.ReviewRequest) (*models.Review, error) {
	var resp models.Review
	path := fmt.Sprintf("/api/history/%d", reviewID)
	if err := c.doer.Do(ctx, http.MethodPut, path, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteReview removes a review.
func (c *HistoryClient) DeleteReview(ctx context.Context, reviewID int64) error {
	path := fmt.Sprintf("/api/history/%d", reviewID)
	return c.doer.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// AddToWatchlist adds a movie to the caller's watchlist. The movie rides
// in the path and the server resolves the user from the auth headers.
func (c *HistoryClient) AddToWatchlist(ctx context.Context, contentID string) (*models.WatchlistItem, error) {
	var resp models.WatchlistItem
	path := "/api/history/watchlist/" + url.PathEscape(contentID)
	if err := c.doer.Do(ctx, http.MethodPost, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RemoveFromWatchlist drops a movie from the caller's watchlist.
func (c *HistoryClient) RemoveFromWatchlist(ctx context.Context, contentID string) error {
	path := "/api/history/watchlist/" + url.PathEscape(contentID)
	return c.doer.Do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// UserWatchlist lists a user's watchlist entries.
func (c *HistoryClient) UserWatchlist(ctx context.Context, userID string) ([]models.WatchlistItem, error) {
	var resp []models.WatchlistItem
	path := "/api/history/watchlist/user/" + url.PathEscape(userID)
	if err := c.doer.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CheckWatchlist reports whether a movie is on the caller's watchlist.
func (c *HistoryClient) CheckWatchlist(ctx context.Context, contentID string) (*models.WatchlistStatus, error) {
	var resp models.WatchlistStatus
	path := "/api/history/watchlist/check/" + url.PathEscape(contentID)
	if err := c.doer.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
