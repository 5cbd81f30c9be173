// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"
)

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnauthorized, "unauthorized"},
		{KindNetworkTimeout, "network_timeout"},
		{KindNetworkUnreachable, "network_unreachable"},
		{KindServerError, "server_error"},
		{KindClientRequestError, "client_request_error"},
		{KindMalformedResponse, "malformed_response"},
		{Kind(0), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindOfUnwrapsChains(t *testing.T) {
	t.Parallel()

	inner := &APIError{Kind: KindServerError, Status: 502, Message: "bad gateway"}
	wrapped := fmt.Errorf("load watchlist: %w", inner)

	kind, ok := KindOf(wrapped)
	if !ok || kind != KindServerError {
		t.Errorf("KindOf(wrapped) = %v, %v; want KindServerError", kind, ok)
	}

	if !IsKind(wrapped, KindServerError) {
		t.Error("IsKind must see through wrapping")
	}
	if IsKind(errors.New("plain"), KindServerError) {
		t.Error("IsKind on a plain error must be false")
	}
}

func TestClassifyStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		body     string
		wantKind Kind
		wantMsg  string
	}{
		{"401", 401, `{"error":"token expired"}`, KindUnauthorized, "token expired"},
		{"404 with message field", 404, `{"message":"movie not found"}`, KindClientRequestError, "movie not found"},
		{"422 validation", 422, `{"error":"rating must be at most 10"}`, KindClientRequestError, "rating must be at most 10"},
		{"500 with message", 500, `{"error":"boom"}`, KindServerError, "boom"},
		{"503 empty body", 503, ``, KindServerError, ""},
		{"400 non-JSON body", 400, `<html>nope</html>`, KindClientRequestError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			apiErr := classifyStatus(tt.status, []byte(tt.body))
			if apiErr.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", apiErr.Kind, tt.wantKind)
			}
			if apiErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMsg)
			}
			if apiErr.Status != tt.status {
				t.Errorf("Status = %d, want %d", apiErr.Status, tt.status)
			}
		})
	}
}

func TestClassifyTransport(t *testing.T) {
	t.Parallel()

	if got := classifyTransport(context.DeadlineExceeded); got.Kind != KindNetworkTimeout {
		t.Errorf("deadline exceeded classified as %v, want timeout", got.Kind)
	}

	ue := &url.Error{Op: "Get", URL: "http://x", Err: errors.New("connection refused")}
	if got := classifyTransport(ue); got.Kind != KindNetworkUnreachable {
		t.Errorf("connection refused classified as %v, want unreachable", got.Kind)
	}
}
