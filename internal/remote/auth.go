// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package remote

import (
	"context"
	"net/http"

	"github.com/curator-ai/curatorctl/internal/gateway"
	"github.com/curator-ai/curatorctl/internal/models"
)

// AuthAPI covers the /api/auth endpoints.
//
// Login, Register, and Refresh return a fresh token plus the identity it
// belongs to; callers install the pair into the session carrier as one
// unit. Logout is best-effort on the server side: the local session is
// the source of truth for signed-out state.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.JWTResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.JWTResponse, error)
	Refresh(ctx context.Context) (*models.JWTResponse, error)
	Me(ctx context.Context) (*models.CurrentUser, error)
	Logout(ctx context.Context) error
}

// AuthClient implements AuthAPI over a gateway.
type AuthClient struct {
	doer gateway.Doer
}

var _ AuthAPI = (*AuthClient)(nil)

// NewAuthClient creates an auth client.
func NewAuthClient(doer gateway.Doer) *AuthClient {
	return &AuthClient{doer: doer}
}

// Login exchanges credentials for a token.
func (c *AuthClient) Login(ctx context.Context, req models.LoginRequest) (*models.JWTResponse, error) {
	var resp models.JWTResponse
	if err := c.doer.Do(ctx, http.MethodPost, "/api/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and signs it in.
func (c *AuthClient) Register(ctx context.Context, req models.RegisterRequest) (*models.JWTResponse, error) {
	var resp models.JWTResponse
	if err := c.doer.Do(ctx, http.MethodPost, "/api/auth/register", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refresh rotates the current token. Requires an authenticated session.
func (c *AuthClient) Refresh(ctx context.Context) (*models.JWTResponse, error) {
	var resp models.JWTResponse
	if err := c.doer.Do(ctx, http.MethodPost, "/api/auth/refresh", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the account behind the current token.
func (c *AuthClient) Me(ctx context.Context) (*models.CurrentUser, error) {
	var resp models.CurrentUser
	if err := c.doer.Do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout tells the server to drop the session. Callers clear the carrier
// regardless of the outcome.
func (c *AuthClient) Logout(ctx context.Context) error {
	return c.doer.Do(ctx, http.MethodPost, "/api/auth/logout", nil, nil, nil)
}
