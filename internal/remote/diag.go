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

// DiagAPI covers the health and debug endpoints.
type DiagAPI interface {
	Health(ctx context.Context) (*models.HealthStatus, error)
	Routes(ctx context.Context) ([]models.RouteInfo, error)
}

// DiagClient implements DiagAPI over a gateway.
type DiagClient struct {
	doer gateway.Doer
}

var _ DiagAPI = (*DiagClient)(nil)

// NewDiagClient creates a diagnostics client.
func NewDiagClient(doer gateway.Doer) *DiagClient {
	return &DiagClient{doer: doer}
}

// Health probes the API server.
func (c *DiagClient) Health(ctx context.Context) (*models.HealthStatus, error) {
	var resp models.HealthStatus
	if err := c.doer.Do(ctx, http.MethodGet, "/api/health", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Routes lists the server's registered routes.
func (c *DiagClient) Routes(ctx context.Context) ([]models.RouteInfo, error) {
	var resp []models.RouteInfo
	if err := c.doer.Do(ctx, http.MethodGet, "/api/debug/routes", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}
