// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/curator-ai/curatorctl/internal/app"
	"github.com/curator-ai/curatorctl/internal/models"
)

// agentRequest builds the shared AI request body from the signed-in
// identity and the command arguments.
func agentRequest(a *app.App, args []string) (models.AgentRequest, error) {
	query := strings.Join(args, " ")
	if query == "" {
		return models.AgentRequest{}, fmt.Errorf("expected a query")
	}
	identity, ok := a.Carrier().Identity()
	if !ok {
		return models.AgentRequest{}, fmt.Errorf("sign in first")
	}
	return models.AgentRequest{UserID: identity.ID, Query: query}, nil
}

func cmdRecommend(ctx context.Context, a *app.App, args []string) error {
	req, err := agentRequest(a, args)
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	resp, err := a.AI.RecommendPersonal(ctx, req)
	if err != nil {
		return err
	}
	if resp.Error != "" {
		return fmt.Errorf("recommend: agent reported: %s", resp.Error)
	}

	for i := range resp.Recommendations {
		r := &resp.Recommendations[i]
		fmt.Printf("%d. %s (%d) rating %.1f", i+1, r.Title, r.Year, r.Rating)
		if len(r.Genres) > 0 {
			fmt.Printf(" [%s]", strings.Join(r.Genres, ", "))
		}
		fmt.Println()
		if r.Overview != "" {
			fmt.Printf("   %s\n", r.Overview)
		}
	}
	if resp.PersonalizedExplanation != "" {
		fmt.Println()
		fmt.Println(resp.PersonalizedExplanation)
	}
	return nil
}

func cmdAgent(ctx context.Context, a *app.App, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("agent: expected route, ideas, script, or captions")
	}
	sub, rest := args[0], args[1:]

	req, err := agentRequest(a, rest)
	if err != nil {
		return fmt.Errorf("agent %s: %w", sub, err)
	}

	switch sub {
	case "route":
		resp, err := a.AI.RouteAgent(ctx, req)
		if err != nil {
			return err
		}
		if resp.Error != "" {
			return fmt.Errorf("agent route: agent reported: %s", resp.Error)
		}
		fmt.Printf("routed to %s\n", resp.AgentType)
		return printJSON(resp)

	case "ideas":
		resp, err := a.AI.GenerateIdeas(ctx, req)
		if err != nil {
			return err
		}
		if resp.Error != "" {
			return fmt.Errorf("agent ideas: agent reported: %s", resp.Error)
		}
		return printJSON(resp.Ideas)

	case "script":
		resp, err := a.AI.ShortsScript(ctx, req)
		if err != nil {
			return err
		}
		if resp.Error != "" {
			return fmt.Errorf("agent script: agent reported: %s", resp.Error)
		}
		return printJSON(resp.Script)

	case "captions":
		resp, err := a.AI.OptimizeCaptions(ctx, req)
		if err != nil {
			return err
		}
		if resp.Error != "" {
			return fmt.Errorf("agent captions: agent reported: %s", resp.Error)
		}
		return printJSON(resp.Options)

	default:
		return fmt.Errorf("agent: unknown subcommand %q", sub)
	}
}

func cmdHealth(ctx context.Context, a *app.App) error {
	api, err := a.Diag.Health(ctx)
	if err != nil {
		fmt.Printf("api: unreachable (%v)\n", err)
	} else {
		fmt.Printf("api: %s\n", api.Status)
	}

	ai, err := a.AI.Health(ctx)
	if err != nil {
		fmt.Printf("ai: unreachable (%v)\n", err)
		return nil
	}
	fmt.Printf("ai: %s\n", ai.Status)
	return nil
}

func cmdRoutes(ctx context.Context, a *app.App) error {
	routes, err := a.Diag.Routes(ctx)
	if err != nil {
		return err
	}
	for _, r := range routes {
		fmt.Printf("%-7s %s\n", r.Method, r.Path)
	}
	return nil
}
