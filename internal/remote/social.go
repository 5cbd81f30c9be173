// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package remote

import (
	"context"
	"fmt"
	"net/http"

	"github.com/curator-ai/curatorctl/internal/gateway"
	"github.com/curator-ai/curatorctl/internal/models"
)

// SocialAPI covers the /api/social endpoints. Follow and Unfollow act on
// behalf of the authenticated caller; there is no membership-check
// endpoint, so follow state is seeded by scanning the caller's following
// list.
type SocialAPI interface {
	Follow(ctx context.Context, userID int64) error
	Unfollow(ctx context.Context, userID int64) error
	Followers(ctx context.Context, userID int64) ([]models.FollowUser, error)
	Following(ctx context.Context, userID int64) ([]models.FollowUser, error)
	Feed(ctx context.Context) ([]models.FeedItem, error)
}

// SocialClient implements SocialAPI over a gateway.
type SocialClient struct {
	doer gateway.Doer
}

var _ SocialAPI = (*SocialClient)(nil)

// NewSocialClient creates a social-graph client.
func NewSocialClient(doer gateway.Doer) *SocialClient {
	return &SocialClient{doer: doer}
}

// Follow adds the given user to the caller's following list.
func (c *SocialClient) Follow(ctx context.Context, userID int64) error {
	path := fmt.Sprintf("/api/social/follow/%d", userID)
	return c.doer.Do(ctx, http.MethodPost, path, nil, nil, nil)
}

// Unfollow removes the given user from the caller's following list.
func (c *SocialClient) Unfollow(ctx context.Context, userID int64) error {
	path := fmt.Sprintf("/api/social/unfollow/%d", userID)
	return c.doer.Do(ctx, http.MethodPost, path, nil, nil, nil)
}

// Followers lists the users following the given user.
func (c *SocialClient) Followers(ctx context.Context, userID int64) ([]models.FollowUser, error) {
	var resp []models.FollowUser
	path := fmt.Sprintf("/api/social/%d/followers", userID)
	if err := c.doer.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Following lists the users the given user follows.
func (c *SocialClient) Following(ctx context.Context, userID int64) ([]models.FollowUser, error) {
	var resp []models.FollowUser
	path := fmt.Sprintf("/api/social/%d/following", userID)
	if err := c.doer.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Feed returns the caller's activity feed.
func (c *SocialClient) Feed(ctx context.Context) ([]models.FeedItem, error) {
	var resp []models.FeedItem
	if err := c.doer.Do(ctx, http.MethodGet, "/api/feed", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
