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

// AIAPI covers the /api/ai agent endpoints. All agents share the same
// request shape: a user id and a free-text query. The agent service
// reports its own failures inside a 200 response via the Error field, so
// callers check both the returned error and the response.
type AIAPI interface {
	RecommendPersonal(ctx context.Context, req models.AgentRequest) (*models.RecommendationResponse, error)
	RouteAgent(ctx context.Context, req models.AgentRequest) (*models.AgentRouteResponse, error)
	GenerateIdeas(ctx context.Context, req models.AgentRequest) (*models.IdeaGenerationResponse, error)
	ShortsScript(ctx context.Context, req models.AgentRequest) (*models.ShortsScriptResponse, error)
	OptimizeCaptions(ctx context.Context, req models.AgentRequest) (*models.CaptionOptimizerResponse, error)
	Health(ctx context.Context) (*models.HealthStatus, error)
}

// AIClient implements AIAPI over a gateway.
type AIClient struct {
	doer gateway.Doer
}

var _ AIAPI = (*AIClient)(nil)

// NewAIClient creates an AI agent client.
func NewAIClient(doer gateway.Doer) *AIClient {
	return &AIClient{doer: doer}
}

// RecommendPersonal asks the recommendation agent for picks tailored to
// the user's watch history.
func (c *AIClient) RecommendPersonal(ctx context.Context, req models.AgentRequest) (*models.RecommendationResponse, error) {
	var resp models.RecommendationResponse
	if err := c.doer.Do(ctx, http.MethodPost, "/api/ai/recommend/personal", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RouteAgent lets the router pick the specialist agent for a query.
func (c *AIClient) RouteAgent(ctx context.Context, req models.AgentRequest) (*models.AgentRouteResponse, error) {
	var resp models.AgentRouteResponse
	if err := c.doer.Do(ctx, http.MethodPost, "/api/ai/agent/route", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GenerateIdeas invokes the idea-generation agent.
func (c *AIClient) GenerateIdeas(ctx context.Context, req models.AgentRequest) (*models.IdeaGenerationResponse, error) {
	var resp models.IdeaGenerationResponse
	if err := c.doer.Do(ctx, http.MethodPost, "/api/ai/agent/idea-generation", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ShortsScript invokes the shorts-script agent.
func (c *AIClient) ShortsScript(ctx context.Context, req models.AgentRequest) (*models.ShortsScriptResponse, error) {
	var resp models.ShortsScriptResponse
	if err := c.doer.Do(ctx, http.MethodPost, "/api/ai/agent/shorts-script", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// OptimizeCaptions invokes the caption-optimizer agent.
func (c *AIClient) OptimizeCaptions(ctx context.Context, req models.AgentRequest) (*models.CaptionOptimizerResponse, error) {
	var resp models.CaptionOptimizerResponse
	if err := c.doer.Do(ctx, http.MethodPost, "/api/ai/agent/caption-optimizer", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health probes the AI service.
func (c *AIClient) Health(ctx context.Context) (*models.HealthStatus, error) {
	var resp models.HealthStatus
	if err := c.doer.Do(ctx, http.MethodGet, "/api/ai/health", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
