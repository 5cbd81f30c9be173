// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/curator-ai/curatorctl/internal/gateway"
	"github.com/curator-ai/curatorctl/internal/models"
)

// UserAPI covers the /api/users profile endpoints.
type UserAPI interface {
	Profile(ctx context.Context, userID int64) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdate) (*models.UserProfile, error)
	UploadAvatar(ctx context.Context, userID int64, filename string, content io.Reader) (*models.AvatarResponse, error)
}

// UserClient implements UserAPI over a gateway.
type UserClient struct {
	doer gateway.Doer
}

var _ UserAPI = (*UserClient)(nil)

// NewUserClient creates a user-profile client.
func NewUserClient(doer gateway.Doer) *UserClient {
	return &UserClient{doer: doer}
}

// Profile fetches a user's public profile.
func (c *UserClient) Profile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	var resp models.UserProfile
	path := fmt.Sprintf("/api/users/%d", userID)
	if err := c.doer.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateProfile applies a partial profile update; nil fields keep their
// current value.
func (c *UserClient) UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdate) (*models.UserProfile, error) {
	var resp models.UserProfile
	path := fmt.Sprintf("/api/users/%d", userID)
	if err := c.doer.Do(ctx, http.MethodPut, path, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UploadAvatar sends an avatar image as multipart form data under the
// "avatar" field.
func (c *UserClient) UploadAvatar(ctx context.Context, userID int64, filename string, content io.Reader) (*models.AvatarResponse, error) {
	var resp models.AvatarResponse
	path := fmt.Sprintf("/api/users/%d/avatar", userID)
	if err := c.doer.DoMultipart(ctx, http.MethodPost, path, "avatar", filename, content, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
