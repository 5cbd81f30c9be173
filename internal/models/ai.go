// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package models

// AgentRequest is the common body for all AI endpoints: {user_id, query}.
type AgentRequest struct {
	UserID string `json:"user_id"`
	Query  string `json:"query"`
}

// MovieRecommendation is a single AI movie recommendation.
type MovieRecommendation struct {
	Title           string   `json:"title"`
	Year            int      `json:"year"`
	Rating          float64  `json:"rating"`
	Genres          []string `json:"genres"`
	Overview        string   `json:"overview"`
	TMDBID          int64    `json:"tmdbId"`
	PosterPath      string   `json:"poster_path,omitempty"`
	PosterURL       string   `json:"poster_url,omitempty"`
	Source          string   `json:"source,omitempty"`
	Similarity      float64  `json:"similarity,omitempty"`
	MatchConfidence float64  `json:"match_confidence"`
}

// UserInsights summarizes learned viewing preferences.
type UserInsights struct {
	PreferenceConfidence float64  `json:"preference_confidence"`
	PreferredGenres      []string `json:"preferred_genres"`
	PersonalizationLevel string   `json:"personalization_level"`
}

// RecommendationResponse is returned by POST /api/ai/recommend/personal.
type RecommendationResponse struct {
	AgentType               string                `json:"agent_type"`
	UserInsights            UserInsights          `json:"user_insights"`
	Recommendations         []MovieRecommendation `json:"recommendations"`
	PersonalizedExplanation string                `json:"personalized_explanation"`
	NextSuggestions         []string              `json:"next_suggestions"`
	Error                   string                `json:"error,omitempty"`
}

// IdeaGenerationResponse is returned by POST /api/ai/agent/idea-generation.
type IdeaGenerationResponse struct {
	AgentType string           `json:"agent_type"`
	Ideas     []map[string]any `json:"ideas"`
	Error     string           `json:"error,omitempty"`
}

// ShortsScriptResponse is returned by POST /api/ai/agent/shorts-script.
type ShortsScriptResponse struct {
	AgentType string         `json:"agent_type"`
	Script    map[string]any `json:"script"`
	Error     string         `json:"error,omitempty"`
}

// CaptionOptimizerResponse is returned by POST /api/ai/agent/caption-optimizer.
type CaptionOptimizerResponse struct {
	AgentType string           `json:"agent_type"`
	Options   []map[string]any `json:"options"`
	Error     string           `json:"error,omitempty"`
}

// AgentRouteResponse is the union returned by POST /api/ai/agent/route.
// The agent router picks a specialist agent and the matching field is set.
type AgentRouteResponse struct {
	AgentType               string                `json:"agent_type"`
	Data                    map[string]any        `json:"data,omitempty"`
	Ideas                   []map[string]any      `json:"ideas,omitempty"`
	Script                  map[string]any        `json:"script,omitempty"`
	Options                 []map[string]any      `json:"options,omitempty"`
	Recommendations         []MovieRecommendation `json:"recommendations,omitempty"`
	UserInsights            map[string]any        `json:"user_insights,omitempty"`
	PersonalizedExplanation string                `json:"personalized_explanation,omitempty"`
	NextSuggestions         []string              `json:"next_suggestions,omitempty"`
	Error                   string                `json:"error,omitempty"`
}

// HealthStatus is the generic health probe response.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service,omitempty"`
	Version string `json:"version,omitempty"`
}

// RouteInfo describes one registered route from GET /api/debug/routes.
type RouteInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}
