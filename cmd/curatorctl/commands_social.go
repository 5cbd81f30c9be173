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
	"text/tabwriter"

	"github.com/curator-ai/curatorctl/internal/app"
)

// cmdFollow handles both follow and unfollow through the optimistic
// controller, so a failed mutation reverts and reports instead of
// leaving the local state wrong.
func cmdFollow(ctx context.Context, a *app.App, args []string, follow bool) error {
	verb := "follow"
	if !follow {
		verb = "unfollow"
	}
	if len(args) != 1 {
		return fmt.Errorf("%s: expected one user id", verb)
	}
	targetID := args[0]

	ctl := a.FollowToggle(noticePrinter)
	ctl.Seed(ctx, targetID)

	if ctl.IsMember(targetID) == follow {
		if follow {
			fmt.Println("already following")
		} else {
			fmt.Println("not following")
		}
		return nil
	}
	if err := ctl.Toggle(ctx, targetID); err != nil {
		return err
	}
	if follow {
		fmt.Printf("now following user %s\n", targetID)
	} else {
		fmt.Printf("unfollowed user %s\n", targetID)
	}
	return nil
}

func socialTable(entries []app.SocialEntry) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tUSERNAME")
	for _, e := range entries {
		username := ""
		name := e.User.DisplayName
		if e.Profile != nil {
			username = e.Profile.Username
			if name == "" {
				name = e.Profile.DisplayName
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", e.User.ID, name, username)
	}
	return w.Flush()
}

func cmdFollowers(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("followers", flag.ContinueOnError)
	userID := fs.Int64("user", 0, "user id (default: yourself)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	entries, err := a.FollowersView(ctx, *userID)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no followers")
		return nil
	}
	return socialTable(entries)
}

func cmdFollowing(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("following", flag.ContinueOnError)
	userID := fs.Int64("user", 0, "user id (default: yourself)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	entries, err := a.FollowingView(ctx, *userID)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("not following anyone")
		return nil
	}
	return socialTable(entries)
}

func cmdFeed(ctx context.Context, a *app.App) error {
	items, err := a.FeedView(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Println("feed is empty")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tWHO\tACTION\tCONTENT")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			item.CreatedAt.Format("2006-01-02 15:04"), item.DisplayName, item.Action, item.ContentID)
	}
	return w.Flush()
}
