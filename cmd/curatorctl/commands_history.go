// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/curator-ai/curatorctl/internal/app"
	"github.com/curator-ai/curatorctl/internal/models"
	"github.com/curator-ai/curatorctl/internal/toggle"
)

// noticePrinter reports toggle rollbacks on stderr.
var noticePrinter = toggle.NotifierFunc(func(action, targetID string, err error) {
	fmt.Fprintf(os.Stderr, "curatorctl: %s of %s failed, reverted: %v\n", action, targetID, err)
})

func cmdWatchlist(ctx context.Context, a *app.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("watchlist: expected add, remove, toggle, check, or list")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "add", "remove", "toggle":
		if len(rest) != 1 {
			return fmt.Errorf("watchlist %s: expected one movie id", sub)
		}
		contentID := rest[0]
		ctl := a.WatchlistToggle(noticePrinter)
		ctl.Seed(ctx, contentID)

		// add and remove only act when the state differs; toggle always
		// flips.
		member := ctl.IsMember(contentID)
		if (sub == "add" && member) || (sub == "remove" && !member) {
			fmt.Printf("watchlist unchanged (in watchlist: %s)\n", yesNo(member))
			return nil
		}
		if err := ctl.Toggle(ctx, contentID); err != nil {
			return err
		}
		fmt.Printf("in watchlist: %s\n", yesNo(ctl.IsMember(contentID)))
		return nil

	case "check":
		if len(rest) != 1 {
			return fmt.Errorf("watchlist check: expected one movie id")
		}
		status, err := a.History.CheckWatchlist(ctx, rest[0])
		if err != nil {
			return err
		}
		fmt.Printf("in watchlist: %s\n", yesNo(status.InWatchlist))
		return nil

	case "list":
		entries, err := a.WatchlistView(ctx)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("watchlist is empty")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tYEAR\tADDED")
		for _, e := range entries {
			title, year := "(unavailable)", ""
			if e.Movie != nil {
				title, year = e.Movie.Title, e.Movie.Year()
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				e.Item.ContentID, title, year, e.Item.AddedAt.Format("2006-01-02"))
		}
		return w.Flush()

	default:
		return fmt.Errorf("watchlist: unknown subcommand %q", sub)
	}
}

func cmdReview(ctx context.Context, a *app.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("review: expected add, list, my, update, or delete")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "add":
		fs := flag.NewFlagSet("review add", flag.ContinueOnError)
		movie := fs.String("movie", "", "movie id")
		rating := fs.Int("rating", 0, "rating 1-10")
		text := fs.String("text", "", "review text")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *movie == "" || *rating < 1 || *rating > 10 {
			return fmt.Errorf("review add: -movie and -rating (1-10) are required")
		}
		identity, ok := a.Carrier().Identity()
		if !ok {
			return fmt.Errorf("review add: sign in first")
		}
		review, err := a.History.AddReview(ctx, models.ReviewRequest{
			UserID:     identity.ID,
			ContentID:  *movie,
			Rating:     *rating,
			ReviewText: *text,
		})
		if err != nil {
			return err
		}
		fmt.Printf("review %d saved\n", review.ID)
		return nil

	case "list":
		if len(rest) != 1 {
			return fmt.Errorf("review list: expected one movie id")
		}
		reviews, err := a.MovieReviewsView(ctx, rest[0])
		if err != nil {
			return err
		}
		return printJSON(reviews)

	case "my":
		entries, err := a.ReviewsView(ctx, "")
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("no reviews yet")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tRATING\tTEXT")
		for _, e := range entries {
			title := "(unavailable)"
			if e.Movie != nil {
				title = e.Movie.Title
			}
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\n",
				e.Review.ID, title, e.Review.Rating, e.Review.ReviewText)
		}
		return w.Flush()

	case "update":
		fs := flag.NewFlagSet("review update", flag.ContinueOnError)
		id := fs.Int64("id", 0, "review id")
		movie := fs.String("movie", "", "movie id")
		rating := fs.Int("rating", 0, "rating 1-10")
		text := fs.String("text", "", "review text")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *id == 0 || *movie == "" || *rating < 1 || *rating > 10 {
			return fmt.Errorf("review update: -id, -movie, and -rating (1-10) are required")
		}
		identity, ok := a.Carrier().Identity()
		if !ok {
			return fmt.Errorf("review update: sign in first")
		}
		review, err := a.History.UpdateReview(ctx, *id, models.ReviewRequest{
			UserID:     identity.ID,
			ContentID:  *movie,
			Rating:     *rating,
			ReviewText: *text,
		})
		if err != nil {
			return err
		}
		fmt.Printf("review %d updated\n", review.ID)
		return nil

	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("review delete: expected one review id")
		}
		id, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return fmt.Errorf("review delete: bad id %q", rest[0])
		}
		if err := a.History.DeleteReview(ctx, id); err != nil {
			return err
		}
		fmt.Printf("review %d deleted\n", id)
		return nil

	default:
		return fmt.Errorf("review: unknown subcommand %q", sub)
	}
}
