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

	"github.com/curator-ai/curatorctl/internal/app"
	"github.com/curator-ai/curatorctl/internal/models"
)

// resolveUserID turns a -user flag value into a concrete id, defaulting
// to the signed-in user.
func resolveUserID(a *app.App, flagValue int64) (int64, error) {
	if flagValue != 0 {
		return flagValue, nil
	}
	identity, ok := a.Carrier().Identity()
	if !ok {
		return 0, fmt.Errorf("sign in or pass -user")
	}
	return strconv.ParseInt(identity.ID, 10, 64)
}

// promptSecret reads a value from stdin when it was not given as a flag.
func promptSecret(label string) (string, error) {
	fmt.Fprintf(os.Stderr, "%s: ", label)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func cmdLogin(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("username", "", "account username")
	password := fs.String("password", "", "account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return fmt.Errorf("login: -username is required")
	}
	if *password == "" {
		p, err := promptSecret("password")
		if err != nil {
			return err
		}
		*password = p
	}

	jwt, err := a.SignIn(ctx, *username, *password)
	if err != nil {
		return err
	}
	fmt.Printf("signed in as %s (user %d)\n", jwt.DisplayName, jwt.UserID)
	return nil
}

func cmdRegister(ctx context.Context, a *app.App, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	username := fs.String("username", "", "account username")
	email := fs.String("email", "", "account email")
	displayName := fs.String("display-name", "", "public display name")
	password := fs.String("password", "", "account password (prompted when omitted)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" || *email == "" {
		return fmt.Errorf("register: -username and -email are required")
	}
	if *password == "" {
		p, err := promptSecret("password")
		if err != nil {
			return err
		}
		*password = p
	}

	jwt, err := a.SignUp(ctx, models.RegisterRequest{
		Username:    *username,
		Email:       *email,
		Password:    *password,
		DisplayName: *displayName,
	})
	if err != nil {
		return err
	}
	fmt.Printf("registered and signed in as %s (user %d)\n", jwt.DisplayName, jwt.UserID)
	return nil
}

func cmdLogout(ctx context.Context, a *app.App) error {
	if err := a.SignOut(ctx); err != nil {
		return err
	}
	fmt.Println("signed out")
	return nil
}

func cmdWhoami(ctx context.Context, a *app.App) error {
	identity, ok := a.Carrier().Identity()
	if !ok {
		fmt.Println("not signed in")
		return nil
	}
	fmt.Printf("%s (user %s)\n", identity.DisplayName, identity.ID)
	if expiry, ok := a.Carrier().TokenExpiry(); ok {
		fmt.Printf("token expires %s\n", expiry.Local().Format("2006-01-02 15:04:05"))
	}

	// The server may know more than the stored identity.
	me, err := a.Auth.Me(ctx)
	if err != nil {
		return nil // local identity already printed
	}
	fmt.Printf("username %s, email %s\n", me.Username, me.Email)
	return nil
}

func cmdProfile(ctx context.Context, a *app.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("profile: expected show, update, or avatar")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "show":
		fs := flag.NewFlagSet("profile show", flag.ContinueOnError)
		userID := fs.Int64("user", 0, "user id (default: yourself)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		id, err := resolveUserID(a, *userID)
		if err != nil {
			return err
		}
		profile, err := a.Users.Profile(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(profile)

	case "update":
		fs := flag.NewFlagSet("profile update", flag.ContinueOnError)
		userID := fs.Int64("user", 0, "user id (default: yourself)")
		displayName := fs.String("display-name", "", "new display name")
		email := fs.String("email", "", "new email")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		id, err := resolveUserID(a, *userID)
		if err != nil {
			return err
		}
		var update models.ProfileUpdate
		if *displayName != "" {
			update.DisplayName = displayName
		}
		if *email != "" {
			update.Email = email
		}
		profile, err := a.Users.UpdateProfile(ctx, id, update)
		if err != nil {
			return err
		}
		return printJSON(profile)

	case "avatar":
		fs := flag.NewFlagSet("profile avatar", flag.ContinueOnError)
		userID := fs.Int64("user", 0, "user id (default: yourself)")
		file := fs.String("file", "", "image file to upload")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if *file == "" {
			return fmt.Errorf("profile avatar: -file is required")
		}
		id, err := resolveUserID(a, *userID)
		if err != nil {
			return err
		}
		f, err := os.Open(*file)
		if err != nil {
			return err
		}
		defer f.Close()
		resp, err := a.Users.UploadAvatar(ctx, id, f.Name(), f)
		if err != nil {
			return err
		}
		fmt.Printf("avatar uploaded: %s\n", resp.AvatarURL)
		return nil

	default:
		return fmt.Errorf("profile: unknown subcommand %q", sub)
	}
}
