// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/curator-ai/curatorctl/internal/app"
	"github.com/curator-ai/curatorctl/internal/config"
	"github.com/curator-ai/curatorctl/internal/refresh"
)

// settle blocks for d or until the context ends.
func settle(ctx context.Context, d time.Duration) {
	select {
	case <-ctx.Done():
	case <-time.After(d):
	}
}

func cmdSearch(ctx context.Context, a *app.App, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	limit := fs.Int("limit", cfg.Search.Limit, "maximum number of results")
	asJSON := fs.Bool("json", false, "print raw JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	query := strings.Join(fs.Args(), " ")
	if utf8.RuneCountInString(query) < cfg.Search.MinQueryLength {
		return fmt.Errorf("search: query must be at least %d characters", cfg.Search.MinQueryLength)
	}

	movies, err := a.Content.Search(ctx, query, *limit)
	if err != nil {
		return err
	}
	if *asJSON {
		return printJSON(movies)
	}
	if len(movies) == 0 {
		fmt.Println("no results")
		return nil
	}
	printMovies(movies)
	return nil
}

func cmdMovie(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("movie", flag.ContinueOnError)
	complete := fs.Bool("complete", false, "include credits and watch providers")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("movie: expected one movie id")
	}
	id, err := strconv.ParseInt(fs.Arg(0), 10, 64)
	if err != nil {
		return fmt.Errorf("movie: bad id %q", fs.Arg(0))
	}

	if *complete {
		m, err := a.Content.CompleteMovie(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(m)
	}
	m, err := a.Content.Movie(ctx, id)
	if err != nil {
		return err
	}
	return printJSON(m)
}

func cmdLatest(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("latest", flag.ContinueOnError)
	limit := fs.Int("limit", 12, "maximum number of results")
	if err := fs.Parse(args); err != nil {
		return err
	}
	movies, err := a.Content.Latest(ctx, *limit)
	if err != nil {
		return err
	}
	printMovies(movies)
	return nil
}

func cmdNowPlaying(ctx context.Context, a *app.App, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("now-playing", flag.ContinueOnError)
	region := fs.String("region", cfg.API.Region, "theatrical region")
	limit := fs.Int("limit", 12, "maximum number of results")
	if err := fs.Parse(args); err != nil {
		return err
	}
	movies, err := a.Content.NowPlaying(ctx, *region, *limit)
	if err != nil {
		return err
	}
	printMovies(movies)
	return nil
}

func cmdBrowse(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("browse", flag.ContinueOnError)
	page := fs.Int("page", 1, "result page")
	if err := fs.Parse(args); err != nil {
		return err
	}
	result, err := a.Content.Movies(ctx, *page)
	if err != nil {
		return err
	}
	printMovies(result.Movies)
	fmt.Printf("page %d of %d (%d total)\n", result.Page, result.TotalPages, result.Total)
	return nil
}

// cmdWatch runs an interactive search: each line typed feeds the
// debouncer, results render when the window settles, and late responses
// for superseded input never appear.
func cmdWatch(ctx context.Context, a *app.App, cfg *config.Config) error {
	deb, sess := a.NewSearcher()
	defer deb.Close()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go sess.Run(runCtx)

	// Long-running session: keep the token fresh in the background.
	if a.Carrier().Authenticated() {
		sup := refresh.NewSupervisor()
		sup.Add(refresh.New(a.Carrier(), a.RotateToken, cfg.Session.RefreshLeeway))
		sup.ServeBackground(runCtx)
	}

	fmt.Printf("type to search (min %d chars, %s debounce), empty line to quit\n",
		cfg.Search.MinQueryLength, cfg.Search.DebounceWindow)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return nil
		}
		sess.Update(line)

		// Give the window plus one request a moment to settle, then
		// render whatever is currently applied.
		settle(runCtx, cfg.Search.DebounceWindow+700*time.Millisecond)
		if sess.Visible() {
			printMovies(sess.Results())
		} else {
			fmt.Println("no results")
		}
	}
	return scanner.Err()
}
