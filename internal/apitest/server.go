// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

// Package apitest runs an in-process fake of the Curator REST API for
// tests. The fake serves deterministic fixtures through a chi router,
// records every request it sees, and lets individual routes be overridden
// per test to inject failures or custom payloads.
package apitest

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/curator-ai/curatorctl/internal/models"
)

// Capture is one recorded request.
type Capture struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Server is a fake Curator API backed by fixtures.
//
// Fixture fields may be mutated before the first request; after that the
// server owns them. All exported methods are safe for concurrent use.
type Server struct {
	*httptest.Server

	// Fixtures.
	Token     string
	User      models.CurrentUser
	Movies    map[int64]models.Movie
	Reviews   []models.Review
	Watchlist []models.WatchlistItem
	Following []models.FollowUser
	Followers []models.FollowUser
	Feed      []models.FeedItem
	Profiles  map[int64]models.UserProfile

	mu        sync.Mutex
	requests  []Capture
	overrides map[string]http.HandlerFunc
}

// New starts a fake API server and registers cleanup with t.
func New(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		Token: "fixture-token",
		User: models.CurrentUser{
			ID:          42,
			Username:    "casey",
			DisplayName: "Casey",
		},
		Movies: map[int64]models.Movie{
			603: {ID: 603, Title: "The Matrix", ReleaseDate: "1999-03-31", VoteAverage: 8.2},
			550: {ID: 550, Title: "Fight Club", ReleaseDate: "1999-10-15", VoteAverage: 8.4},
		},
		Profiles: map[int64]models.UserProfile{
			42: {ID: 42, Username: "casey", DisplayName: "Casey"},
			77: {ID: 77, Username: "robin", DisplayName: "Robin"},
		},
		overrides: make(map[string]http.HandlerFunc),
	}
	s.Server = httptest.NewServer(s.router())
	t.Cleanup(s.Close)
	return s
}

// Override replaces the handler for one route. Pattern must match the
// chi pattern the route was registered with, e.g. "/api/users/{id}".
func (s *Server) Override(method, pattern string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides[method+" "+pattern] = h
}

// Requests returns a copy of all recorded requests in arrival order.
func (s *Server) Requests() []Capture {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Capture, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestCount counts recorded requests matching method and path.
func (s *Server) RequestCount(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, c := range s.requests {
		if c.Method == method && c.Path == path {
			n++
		}
	}
	return n
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record)

	r.Post("/api/auth/login", s.route(http.MethodPost, "/api/auth/login", s.handleLogin))
	r.Post("/api/auth/register", s.route(http.MethodPost, "/api/auth/register", s.handleLogin))
	r.Post("/api/auth/refresh", s.route(http.MethodPost, "/api/auth/refresh", s.handleRefresh))
	r.Get("/api/auth/me", s.route(http.MethodGet, "/api/auth/me", s.handleMe))
	r.Post("/api/auth/logout", s.route(http.MethodPost, "/api/auth/logout", s.handleNoContent))

	r.Get("/api/content/search", s.route(http.MethodGet, "/api/content/search", s.handleSearch))
	r.Get("/api/content/latest", s.route(http.MethodGet, "/api/content/latest", s.handleLatest))
	r.Get("/api/content/now-playing", s.route(http.MethodGet, "/api/content/now-playing", s.handleNowPlaying))
	r.Get("/api/content/movies", s.route(http.MethodGet, "/api/content/movies", s.handleMoviePage))
	r.Get("/api/content/movies/{id}", s.route(http.MethodGet, "/api/content/movies/{id}", s.handleMovie))
	r.Get("/api/content/movies/{id}/complete", s.route(http.MethodGet, "/api/content/movies/{id}/complete", s.handleCompleteMovie))

	r.Post("/api/history", s.route(http.MethodPost, "/api/history", s.handleAddReview))
	r.Get("/api/history/user/{userId}", s.route(http.MethodGet, "/api/history/user/{userId}", s.handleUserReviews))
	r.Get("/api/history/movie/{contentId}", s.route(http.MethodGet, "/api/history/movie/{contentId}", s.handleMovieReviews))
	r.Put("/api/history/{id}", s.route(http.MethodPut, "/api/history/{id}", s.handleUpdateReview))
	r.Delete("/api/history/{id}", s.route(http.MethodDelete, "/api/history/{id}", s.handleNoContent))

	r.Post("/api/history/watchlist/{contentId}", s.route(http.MethodPost, "/api/history/watchlist/{contentId}", s.handleWatchlistAdd))
	r.Delete("/api/history/watchlist/{contentId}", s.route(http.MethodDelete, "/api/history/watchlist/{contentId}", s.handleWatchlistRemove))
	r.Get("/api/history/watchlist/user/{userId}", s.route(http.MethodGet, "/api/history/watchlist/user/{userId}", s.handleWatchlistUser))
	r.Get("/api/history/watchlist/check/{contentId}", s.route(http.MethodGet, "/api/history/watchlist/check/{contentId}", s.handleWatchlistCheck))

	r.Post("/api/social/follow/{id}", s.route(http.MethodPost, "/api/social/follow/{id}", s.handleFollow))
	r.Post("/api/social/unfollow/{id}", s.route(http.MethodPost, "/api/social/unfollow/{id}", s.handleUnfollow))
	r.Get("/api/social/{id}/followers", s.route(http.MethodGet, "/api/social/{id}/followers", s.handleFollowers))
	r.Get("/api/social/{id}/following", s.route(http.MethodGet, "/api/social/{id}/following", s.handleFollowing))
	r.Get("/api/feed", s.route(http.MethodGet, "/api/feed", s.handleFeed))

	r.Get("/api/users/{id}", s.route(http.MethodGet, "/api/users/{id}", s.handleProfile))
	r.Put("/api/users/{id}", s.route(http.MethodPut, "/api/users/{id}", s.handleUpdateProfile))
	r.Post("/api/users/{id}/avatar", s.route(http.MethodPost, "/api/users/{id}/avatar", s.handleAvatar))

	r.Post("/api/ai/recommend/personal", s.route(http.MethodPost, "/api/ai/recommend/personal", s.handleRecommend))
	r.Post("/api/ai/agent/route", s.route(http.MethodPost, "/api/ai/agent/route", s.handleAgentRoute))
	r.Post("/api/ai/agent/idea-generation", s.route(http.MethodPost, "/api/ai/agent/idea-generation", s.handleIdeas))
	r.Post("/api/ai/agent/shorts-script", s.route(http.MethodPost, "/api/ai/agent/shorts-script", s.handleScript))
	r.Post("/api/ai/agent/caption-optimizer", s.route(http.MethodPost, "/api/ai/agent/caption-optimizer", s.handleCaptions))
	r.Get("/api/ai/health", s.route(http.MethodGet, "/api/ai/health", s.handleAIHealth))

	r.Get("/api/health", s.route(http.MethodGet, "/api/health", s.handleHealth))
	r.Get("/api/debug/routes", s.route(http.MethodGet, "/api/debug/routes", s.handleRoutes(r)))

	return r
}

// record captures every request before routing.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		s.mu.Lock()
		s.requests = append(s.requests, Capture{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// route dispatches to a per-test override when one is registered.
func (s *Server) route(method, pattern string, def http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		override := s.overrides[method+" "+pattern]
		s.mu.Unlock()
		if override != nil {
			override(w, r)
			return
		}
		def(w, r)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the server's standard error envelope. Exported so
// test overrides can produce realistic failures.
func WriteError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, models.JWTResponse{
		AccessToken: s.Token,
		DisplayName: s.User.DisplayName,
		UserID:      s.User.ID,
	})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") == "" {
		WriteError(w, http.StatusUnauthorized, "missing token")
		return
	}
	s.writeJSON(w, http.StatusOK, models.JWTResponse{
		AccessToken: s.Token + "-rotated",
		DisplayName: s.User.DisplayName,
		UserID:      s.User.ID,
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") == "" {
		WriteError(w, http.StatusUnauthorized, "missing token")
		return
	}
	s.writeJSON(w, http.StatusOK, s.User)
}

func (s *Server) handleNoContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(r.URL.Query().Get("query"))
	var hits []models.Movie
	for _, m := range s.Movies {
		if strings.Contains(strings.ToLower(m.Title), query) {
			hits = append(hits, m)
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].ID < hits[j].ID })
	s.writeJSON(w, http.StatusOK, map[string][]models.Movie{"movies": limitMovies(hits, r)})
}

// limitMovies applies the request's limit query parameter.
func limitMovies(movies []models.Movie, r *http.Request) []models.Movie {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 || limit >= len(movies) {
		return movies
	}
	return movies[:limit]
}

func (s *Server) movieByParam(w http.ResponseWriter, r *http.Request) (models.Movie, bool) {
	var id int64
	if _, err := fmt.Sscanf(chi.URLParam(r, "id"), "%d", &id); err != nil {
		WriteError(w, http.StatusBadRequest, "bad movie id")
		return models.Movie{}, false
	}
	m, ok := s.Movies[id]
	if !ok {
		WriteError(w, http.StatusNotFound, "movie not found")
		return models.Movie{}, false
	}
	return m, true
}

func (s *Server) handleMovie(w http.ResponseWriter, r *http.Request) {
	if m, ok := s.movieByParam(w, r); ok {
		s.writeJSON(w, http.StatusOK, m)
	}
}

func (s *Server) handleCompleteMovie(w http.ResponseWriter, r *http.Request) {
	if m, ok := s.movieByParam(w, r); ok {
		s.writeJSON(w, http.StatusOK, models.CompleteMovie{Movie: m})
	}
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	var movies []models.Movie
	for _, m := range s.Movies {
		movies = append(movies, m)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ReleaseDate > movies[j].ReleaseDate })
	s.writeJSON(w, http.StatusOK, limitMovies(movies, r))
}

func (s *Server) handleNowPlaying(w http.ResponseWriter, r *http.Request) {
	var movies []models.Movie
	for _, m := range s.Movies {
		movies = append(movies, m)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
	s.writeJSON(w, http.StatusOK, limitMovies(movies, r))
}

func (s *Server) handleMoviePage(w http.ResponseWriter, _ *http.Request) {
	var movies []models.Movie
	for _, m := range s.Movies {
		movies = append(movies, m)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
	s.writeJSON(w, http.StatusOK, models.MoviePage{
		Movies: movies, Page: 1, TotalPages: 1, Total: len(movies),
	})
}

func (s *Server) handleAddReview(w http.ResponseWriter, r *http.Request) {
	var req models.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "bad review body")
		return
	}
	s.mu.Lock()
	review := models.Review{
		ID:         int64(len(s.Reviews) + 1),
		UserID:     req.UserID,
		ContentID:  req.ContentID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	}
	s.Reviews = append(s.Reviews, review)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusCreated, review)
}

func (s *Server) handleUserReviews(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	var out []models.Review
	s.mu.Lock()
	for _, rv := range s.Reviews {
		if rv.UserID == userID {
			out = append(out, rv)
		}
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleMovieReviews(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "contentId")
	var out []models.Review
	s.mu.Lock()
	for _, rv := range s.Reviews {
		if rv.ContentID == contentID {
			out = append(out, rv)
		}
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUpdateReview(w http.ResponseWriter, r *http.Request) {
	var req models.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "bad review body")
		return
	}
	var id int64
	_, _ = fmt.Sscanf(chi.URLParam(r, "id"), "%d", &id)
	s.writeJSON(w, http.StatusOK, models.Review{
		ID: id, UserID: req.UserID, ContentID: req.ContentID,
		Rating: req.Rating, ReviewText: req.ReviewText,
	})
}

func (s *Server) handleWatchlistAdd(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "contentId")
	if contentID == "" {
		WriteError(w, http.StatusBadRequest, "missing content id")
		return
	}
	s.mu.Lock()
	item := models.WatchlistItem{
		ID:        int64(len(s.Watchlist) + 1),
		UserID:    fmt.Sprintf("%d", s.User.ID),
		ContentID: contentID,
	}
	s.Watchlist = append(s.Watchlist, item)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleWatchlistRemove(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "contentId")
	s.mu.Lock()
	kept := s.Watchlist[:0]
	for _, item := range s.Watchlist {
		if item.ContentID != contentID {
			kept = append(kept, item)
		}
	}
	s.Watchlist = kept
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleWatchlistUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	var out []models.WatchlistItem
	s.mu.Lock()
	for _, item := range s.Watchlist {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleWatchlistCheck(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "contentId")
	found := false
	s.mu.Lock()
	for _, item := range s.Watchlist {
		if item.ContentID == contentID {
			found = true
			break
		}
	}
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, models.WatchlistStatus{InWatchlist: found})
}

func (s *Server) handleFollow(w http.ResponseWriter, r *http.Request) {
	var id int64
	if _, err := fmt.Sscanf(chi.URLParam(r, "id"), "%d", &id); err != nil {
		WriteError(w, http.StatusBadRequest, "bad user id")
		return
	}
	s.mu.Lock()
	s.Following = append(s.Following, models.FollowUser{ID: id})
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUnfollow(w http.ResponseWriter, r *http.Request) {
	var id int64
	_, _ = fmt.Sscanf(chi.URLParam(r, "id"), "%d", &id)
	s.mu.Lock()
	kept := s.Following[:0]
	for _, u := range s.Following {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.Following = kept
	s.mu.Unlock()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleFollowers(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := append([]models.FollowUser(nil), s.Followers...)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleFollowing(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := append([]models.FollowUser(nil), s.Following...)
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleFeed(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Feed)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	var id int64
	if _, err := fmt.Sscanf(chi.URLParam(r, "id"), "%d", &id); err != nil {
		WriteError(w, http.StatusBadRequest, "bad user id")
		return
	}
	p, ok := s.Profiles[id]
	if !ok {
		WriteError(w, http.StatusNotFound, "user not found")
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var id int64
	_, _ = fmt.Sscanf(chi.URLParam(r, "id"), "%d", &id)
	var req models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "bad profile body")
		return
	}
	p := s.Profiles[id]
	if req.DisplayName != nil {
		p.DisplayName = *req.DisplayName
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Subscriptions != nil {
		p.Subscriptions = req.Subscriptions
	}
	s.Profiles[id] = p
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleAvatar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		WriteError(w, http.StatusBadRequest, "bad multipart body")
		return
	}
	f, header, err := r.FormFile("avatar")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "missing avatar field")
		return
	}
	defer f.Close()
	s.writeJSON(w, http.StatusOK, models.AvatarResponse{
		AvatarURL: "/static/avatars/" + header.Filename,
	})
}

func (s *Server) handleRecommend(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, models.RecommendationResponse{
		AgentType: "recommendation",
		Recommendations: []models.MovieRecommendation{
			{Title: "The Matrix", Year: 1999, TMDBID: 603, MatchConfidence: 0.93},
		},
	})
}

func (s *Server) handleAgentRoute(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, models.AgentRouteResponse{AgentType: "recommendation"})
}

func (s *Server) handleIdeas(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, models.IdeaGenerationResponse{
		AgentType: "idea_generation",
		Ideas:     []map[string]any{{"title": "Top sci-fi twists"}},
	})
}

func (s *Server) handleScript(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, models.ShortsScriptResponse{
		AgentType: "shorts_script",
		Script:    map[string]any{"hook": "You will not see this ending coming."},
	})
}

func (s *Server) handleCaptions(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, models.CaptionOptimizerResponse{
		AgentType: "caption_optimizer",
		Options:   []map[string]any{{"caption": "This film broke me."}},
	})
}

func (s *Server) handleAIHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, models.HealthStatus{Status: "ok", Service: "ai"})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, models.HealthStatus{Status: "ok", Service: "api"})
}

func (s *Server) handleRoutes(r chi.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var routes []models.RouteInfo
		walk := func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			routes = append(routes, models.RouteInfo{Method: method, Path: route})
			return nil
		}
		if err := chi.Walk(r, walk); err != nil {
			WriteError(w, http.StatusInternalServerError, "route walk failed")
			return
		}
		s.writeJSON(w, http.StatusOK, routes)
	}
}
