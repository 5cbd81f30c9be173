// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

// Package main is the curatorctl command line client for the Curator
// movie discovery platform.
//
// The client keeps a durable session on disk, talks to the Curator REST
// API through an authenticated gateway with a fixed request timeout and
// optional circuit breaker, and exposes the platform's features as
// subcommands: account management, catalog search and browsing, reviews,
// the watchlist, the social graph, and the AI agents.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (CURATOR_API_BASE_URL, CURATOR_LOG_LEVEL, ...)
//   - Config file (curator.yaml, or path in CURATOR_CONFIG)
//   - Built-in defaults
//
// # Example Usage
//
//	curatorctl login -username casey
//	curatorctl search "the matrix"
//	curatorctl watchlist toggle 603
//	curatorctl recommend "mind-bending sci-fi"
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/curator-ai/curatorctl/internal/app"
	"github.com/curator-ai/curatorctl/internal/config"
	"github.com/curator-ai/curatorctl/internal/gateway"
	"github.com/curator-ai/curatorctl/internal/logging"
	"github.com/curator-ai/curatorctl/internal/session"
)

const usage = `curatorctl - Curator movie discovery client

Account:
  login         Sign in and store the session
  register      Create an account and sign in
  logout        Sign out locally and on the server
  whoami        Show the signed-in identity

Catalog:
  search        Search the movie catalog
  movie         Show one movie (with credits and providers)
  latest        Show the newest catalog entry
  now-playing   List movies currently in theaters
  browse        Page through the catalog

Watchlist and reviews:
  watchlist     add | remove | toggle | check | list
  review        add | list | my | update | delete

Social:
  follow        Follow a user
  unfollow      Unfollow a user
  followers     List a user's followers
  following     List who a user follows
  feed          Show the activity feed

AI:
  recommend     Personalized recommendations
  agent         route | ideas | script | captions

Other:
  profile       show | update | avatar
  watch         Interactive debounced search
  health        Probe the API and AI services
  routes        List the server's registered routes
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "curatorctl:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Print(usage)
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})

	store, cleanup, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	carrier := session.NewCarrier(store)

	var doer gateway.Doer = gateway.New(cfg.API.BaseURL, carrier, gateway.Options{
		Timeout:   cfg.API.Timeout,
		RateLimit: cfg.API.RateLimit,
		RateBurst: cfg.API.RateBurst,
		OnUnauthorized: func() {
			fmt.Fprintln(os.Stderr, "curatorctl: session rejected by server, signed out")
		},
	})
	if cfg.API.CircuitBreaker {
		doer = gateway.NewBreakerGateway(doer)
	}

	a := app.New(cfg, carrier, doer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return dispatch(ctx, a, cfg, args[0], args[1:])
}

// openStore opens the durable session store. An explicit "memory" path
// keeps the session in process only; an empty path resolves to a
// per-user data directory.
func openStore(cfg *config.Config) (session.Store, func(), error) {
	path := cfg.Session.Path
	if path == "memory" {
		return session.NewMemStore(), func() {}, nil
	}
	if path == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			logging.Warn().Err(err).Msg("No user cache dir, session will not survive this process")
			return session.NewMemStore(), func() {}, nil
		}
		path = filepath.Join(base, "curatorctl", "session")
	}

	store, err := session.OpenBadgerStore(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open session store at %s: %w", path, err)
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logging.Warn().Err(err).Msg("Session store close failed")
		}
	}, nil
}

func dispatch(ctx context.Context, a *app.App, cfg *config.Config, cmd string, args []string) error {
	switch cmd {
	case "login":
		return cmdLogin(ctx, a, args)
	case "register":
		return cmdRegister(ctx, a, args)
	case "logout":
		return cmdLogout(ctx, a)
	case "whoami":
		return cmdWhoami(ctx, a)
	case "search":
		return cmdSearch(ctx, a, cfg, args)
	case "movie":
		return cmdMovie(ctx, a, args)
	case "latest":
		return cmdLatest(ctx, a, args)
	case "now-playing":
		return cmdNowPlaying(ctx, a, cfg, args)
	case "browse":
		return cmdBrowse(ctx, a, args)
	case "watchlist":
		return cmdWatchlist(ctx, a, args)
	case "review":
		return cmdReview(ctx, a, args)
	case "follow":
		return cmdFollow(ctx, a, args, true)
	case "unfollow":
		return cmdFollow(ctx, a, args, false)
	case "followers":
		return cmdFollowers(ctx, a, args)
	case "following":
		return cmdFollowing(ctx, a, args)
	case "feed":
		return cmdFeed(ctx, a)
	case "profile":
		return cmdProfile(ctx, a, args)
	case "recommend":
		return cmdRecommend(ctx, a, args)
	case "agent":
		return cmdAgent(ctx, a, args)
	case "watch":
		return cmdWatch(ctx, a, cfg)
	case "health":
		return cmdHealth(ctx, a)
	case "routes":
		return cmdRoutes(ctx, a)
	default:
		return fmt.Errorf("unknown command %q (run 'curatorctl help')", cmd)
	}
}
