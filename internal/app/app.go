// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

// Package app composes the session carrier, the API clients, and the
// local controllers into the operations the command layer calls: sign-in
// and sign-out, enriched watchlist and social views, optimistic toggles,
// and debounced search sessions.
package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/curator-ai/curatorctl/internal/config"
	"github.com/curator-ai/curatorctl/internal/gateway"
	"github.com/curator-ai/curatorctl/internal/logging"
	"github.com/curator-ai/curatorctl/internal/models"
	"github.com/curator-ai/curatorctl/internal/remote"
	"github.com/curator-ai/curatorctl/internal/search"
	"github.com/curator-ai/curatorctl/internal/session"
)

// App bundles everything a command needs to talk to the Curator API.
type App struct {
	cfg     *config.Config
	carrier *session.Carrier

	Auth    remote.AuthAPI
	Content remote.ContentAPI
	AI      remote.AIAPI
	History remote.HistoryAPI
	Social  remote.SocialAPI
	Users   remote.UserAPI
	Diag    remote.DiagAPI
}

// New wires an App over an already-built gateway.
func New(cfg *config.Config, carrier *session.Carrier, doer gateway.Doer) *App {
	return &App{
		cfg:     cfg,
		carrier: carrier,
		Auth:    remote.NewAuthClient(doer),
		Content: remote.NewContentClient(doer),
		AI:      remote.NewAIClient(doer),
		History: remote.NewHistoryClient(doer),
		Social:  remote.NewSocialClient(doer),
		Users:   remote.NewUserClient(doer),
		Diag:    remote.NewDiagClient(doer),
	}
}

// Carrier exposes the session carrier.
func (a *App) Carrier() *session.Carrier {
	return a.carrier
}

// SignIn logs in and installs the returned token and identity into the
// carrier as one unit.
func (a *App) SignIn(ctx context.Context, username, password string) (*models.JWTResponse, error) {
	jwt, err := a.Auth.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, err
	}
	if err := a.installSession(jwt); err != nil {
		return nil, err
	}
	return jwt, nil
}

// SignUp registers an account and signs it in.
func (a *App) SignUp(ctx context.Context, req models.RegisterRequest) (*models.JWTResponse, error) {
	jwt, err := a.Auth.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := a.installSession(jwt); err != nil {
		return nil, err
	}
	return jwt, nil
}

func (a *App) installSession(jwt *models.JWTResponse) error {
	identity := session.Identity{
		ID:          strconv.FormatInt(jwt.UserID, 10),
		DisplayName: jwt.DisplayName,
	}
	return a.carrier.Login(jwt.AccessToken, identity)
}

// SignOut clears the local session. The server-side logout is best
// effort: a failure there never leaves the client signed in.
func (a *App) SignOut(ctx context.Context) error {
	if a.carrier.Authenticated() {
		if err := a.Auth.Logout(ctx); err != nil {
			logging.Warn().Err(err).Msg("Remote logout failed, clearing local session anyway")
		}
	}
	return a.carrier.Logout()
}

// RotateToken refreshes the current token and installs the replacement.
func (a *App) RotateToken(ctx context.Context) error {
	jwt, err := a.Auth.Refresh(ctx)
	if err != nil {
		return err
	}
	return a.installSession(jwt)
}

// selfID returns the signed-in user's id, or an error when signed out.
func (a *App) selfID() (string, error) {
	identity, ok := a.carrier.Identity()
	if !ok {
		return "", session.ErrNoSession
	}
	return identity.ID, nil
}

// selfIDInt is selfID parsed to the integer form the users and social
// endpoints take.
func (a *App) selfIDInt() (int64, error) {
	id, err := a.selfID()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("session identity %q is not numeric: %w", id, err)
	}
	return n, nil
}

// NewSearcher builds a debounced search session against the content
// catalog, using the configured window, minimum length, and result limit.
func (a *App) NewSearcher() (*search.Debouncer, *search.Session) {
	deb := search.NewDebouncer(a.cfg.Search.DebounceWindow, a.cfg.Search.MinQueryLength)
	sess := search.NewSession(deb, func(ctx context.Context, query string) ([]models.Movie, error) {
		return a.Content.Search(ctx, query, a.cfg.Search.Limit)
	})
	return deb, sess
}
