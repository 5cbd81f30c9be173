// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/curator-ai/curatorctl/internal/gateway"
	"github.com/curator-ai/curatorctl/internal/models"
)

// ContentAPI covers the /api/content catalog endpoints.
type ContentAPI interface {
	Search(ctx context.Context, query string, limit int) ([]models.Movie, error)
	Movie(ctx context.Context, id int64) (*models.Movie, error)
	CompleteMovie(ctx context.Context, id int64) (*models.CompleteMovie, error)
	Latest(ctx context.Context, limit int) ([]models.Movie, error)
	NowPlaying(ctx context.Context, region string, limit int) ([]models.Movie, error)
	Movies(ctx context.Context, page int) (*models.MoviePage, error)
}

// ContentClient implements ContentAPI over a gateway.
type ContentClient struct {
	doer gateway.Doer
}

var _ ContentAPI = (*ContentClient)(nil)

// NewContentClient creates a content client.
func NewContentClient(doer gateway.Doer) *ContentClient {
	return &ContentClient{doer: doer}
}

// Search runs a title search. A limit of zero leaves the result size to
// the server.
func (c *ContentClient) Search(ctx context.Context, query string, limit int) ([]models.Movie, error) {
	params := url.Values{"query": {query}}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var resp models.SearchResponse
	if err := c.doer.Do(ctx, http.MethodGet, "/api/content/search", params, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Movies, nil
}

// Movie fetches one catalog entry by id.
func (c *ContentClient) Movie(ctx context.Context, id int64) (*models.Movie, error) {
	var resp models.Movie
	path := fmt.Sprintf("/api/content/movies/%d", id)
	if err := c.doer.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CompleteMovie fetches a movie with credits and watch providers in one
// round trip.
func (c *ContentClient) CompleteMovie(ctx context.Context, id int64) (*models.CompleteMovie, error) {
	var resp models.CompleteMovie
	path := fmt.Sprintf("/api/content/movies/%d/complete", id)
	if err := c.doer.Do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Latest returns the most recently released catalog entries.
func (c *ContentClient) Latest(ctx context.Context, limit int) ([]models.Movie, error) {
	var params url.Values
	if limit > 0 {
		params = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	var resp []models.Movie
	if err := c.doer.Do(ctx, http.MethodGet, "/api/content/latest", params, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// NowPlaying returns movies currently in theaters for a region. Region
// may be empty to use the server default.
func (c *ContentClient) NowPlaying(ctx context.Context, region string, limit int) ([]models.Movie, error) {
	params := url.Values{}
	if region != "" {
		params.Set("region", region)
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	var resp []models.Movie
	if err := c.doer.Do(ctx, http.MethodGet, "/api/content/now-playing", params, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Movies returns a page of the full catalog listing.
func (c *ContentClient) Movies(ctx context.Context, page int) (*models.MoviePage, error) {
	return c.page(ctx, "/api/content/movies", page)
}

func (c *ContentClient) page(ctx context.Context, path string, page int) (*models.MoviePage, error) {
	var params url.Values
	if page > 0 {
		params = url.Values{"page": {strconv.Itoa(page)}}
	}
	var resp models.MoviePage
	if err := c.doer.Do(ctx, http.MethodGet, path, params, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
