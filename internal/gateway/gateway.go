// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

// Package gateway is the single point through which every Curator API call
// flows. It injects credentials, applies the fixed request timeout,
// classifies outcomes into the error taxonomy, and performs the global
// session-invalidation transition on a 401.
package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/curator-ai/curatorctl/internal/logging"
	"github.com/curator-ai/curatorctl/internal/metrics"
	"github.com/curator-ai/curatorctl/internal/session"
)

// maxErrorBody caps how much of an error response body is read for
// message extraction.
const maxErrorBody = 64 << 10

// Doer is the request surface consumed by the typed service clients.
// Both Gateway and BreakerGateway implement it.
type Doer interface {
	Do(ctx context.Context, method, path string, query url.Values, body, result any) error
	DoMultipart(ctx context.Context, method, path, field, filename string, content io.Reader, result any) error
}

// Ensure both implementations satisfy Doer.
var (
	_ Doer = (*Gateway)(nil)
	_ Doer = (*BreakerGateway)(nil)
)

// Options configures a Gateway.
type Options struct {
	// Timeout is the fixed per-request timeout. Default 10s.
	Timeout time.Duration

	// RateLimit / RateBurst configure the client-side request limiter.
	// RateLimit 0 disables limiting.
	RateLimit float64
	RateBurst int

	// OnUnauthorized runs after the session has been invalidated by a
	// 401. It fires at most once per sign-in, regardless of how many
	// concurrent requests observe the rejection.
	OnUnauthorized func()
}

// Gateway issues authenticated HTTP requests to the Curator API.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	carrier    *session.Carrier
	limiter    *rate.Limiter
	onUnauth   func()
	logger     zerolog.Logger
}

// New creates a Gateway for the given API origin.
func New(baseURL string, carrier *session.Carrier, opts Options) *Gateway {
	baseURL = strings.TrimSuffix(baseURL, "/")

	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return &Gateway{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: opts.Timeout},
		carrier:    carrier,
		limiter:    limiter,
		onUnauth:   opts.OnUnauthorized,
		logger:     logging.With().Str("component", "gateway").Logger(),
	}
}

// Do issues a JSON request. body (optional) is marshaled as the JSON
// payload; result (optional) receives the decoded response body.
func (g *Gateway) Do(ctx context.Context, method, path string, query url.Values, body, result any) error {
	var payload io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := g.newRequest(ctx, method, path, query, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return g.dispatch(req, result)
}

// DoMultipart issues a multipart/form-data request carrying one file
// field. Used by the avatar upload endpoint.
func (g *Gateway) DoMultipart(ctx context.Context, method, path, field, filename string, content io.Reader, result any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return fmt.Errorf("copy form file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := g.newRequest(ctx, method, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return g.dispatch(req, result)
}

// newRequest builds a request with credentials and correlation headers.
func (g *Gateway) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	fullURL := g.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	// Bearer token and user-identity headers travel together: both when
	// a session exists, neither when absent.
	if token, ok := g.carrier.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
		if identity, ok := g.carrier.Identity(); ok {
			req.Header.Set("X-User-ID", identity.ID)
		}
	}

	return req, nil
}

// dispatch executes the request, logs the outcome, and classifies failures.
func (g *Gateway) dispatch(req *http.Request, result any) error {
	method, path := req.Method, req.URL.Path

	if g.limiter != nil {
		if err := g.limiter.Wait(req.Context()); err != nil {
			apiErr := classifyTransport(err)
			metrics.RequestErrors.WithLabelValues(method, path, apiErr.Kind.String()).Inc()
			return apiErr
		}
	}

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		apiErr := classifyTransport(err)
		g.logger.Warn().
			Str("method", method).
			Str("path", path).
			Dur("duration", duration).
			Str("kind", apiErr.Kind.String()).
			Err(err).
			Msg("request failed")
		metrics.RequestErrors.WithLabelValues(method, path, apiErr.Kind.String()).Inc()
		return apiErr
	}
	defer func() { _ = resp.Body.Close() }()

	g.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Msg("request completed")
	metrics.ObserveRequest(method, path, resp.StatusCode, duration)

	if resp.StatusCode == http.StatusUnauthorized {
		g.handleUnauthorized()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := classifyStatus(resp.StatusCode, body)
		metrics.RequestErrors.WithLabelValues(method, path, apiErr.Kind.String()).Inc()
		return apiErr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := classifyStatus(resp.StatusCode, body)
		metrics.RequestErrors.WithLabelValues(method, path, apiErr.Kind.String()).Inc()
		return apiErr
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		apiErr := &APIError{Kind: KindMalformedResponse, Status: resp.StatusCode, Err: err}
		metrics.RequestErrors.WithLabelValues(method, path, apiErr.Kind.String()).Inc()
		return apiErr
	}

	return nil
}

// handleUnauthorized invalidates the session. The hook fires only for the
// request that actually performed the authenticated->unauthenticated
// transition, so a burst of concurrent 401s produces a single redirect.
func (g *Gateway) handleUnauthorized() {
	transitioned, err := g.carrier.Invalidate()
	if err != nil {
		g.logger.Error().Err(err).Msg("failed to clear session after 401")
	}
	if transitioned {
		g.logger.Info().Msg("session invalidated by server")
		if g.onUnauth != nil {
			g.onUnauth()
		}
	}
}
