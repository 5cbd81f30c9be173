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

	"github.com/goccy/go-json"
)

// Kind classifies a failed gateway request. Callers branch on Kind to pick
// their recovery policy; the gateway itself never retries.
type Kind int

const (
	// KindUnauthorized is a 401. Handled globally (session invalidated)
	// and still returned to the caller so optimistic rollbacks proceed.
	KindUnauthorized Kind = iota + 1

	// KindNetworkTimeout is a request that exceeded the fixed timeout.
	KindNetworkTimeout

	// KindNetworkUnreachable is any other transport-level failure.
	KindNetworkUnreachable

	// KindServerError is a 5xx response.
	KindServerError

	// KindClientRequestError is a 4xx other than 401.
	KindClientRequestError

	// KindMalformedResponse is a success response whose body did not
	// decode into the expected shape.
	KindMalformedResponse
)

// String returns the Kind name.
func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindNetworkTimeout:
		return "network_timeout"
	case KindNetworkUnreachable:
		return "network_unreachable"
	case KindServerError:
		return "server_error"
	case KindClientRequestError:
		return "client_request_error"
	case KindMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// APIError is the error type surfaced by the gateway for every failed
// request.
type APIError struct {
	Kind    Kind
	Status  int    // HTTP status when a response was received, else 0
	Message string // server-provided message when present
	Err     error  // underlying cause, may be nil
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch {
	case e.Message != "" && e.Status != 0:
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("%s (status %d)", e.Kind, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *APIError) Unwrap() error {
	return e.Err
}

// KindOf extracts the Kind from an error chain.
func KindOf(err error) (Kind, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

// classifyTransport maps a transport-level error (no HTTP response was
// received) to an APIError.
func classifyTransport(err error) *APIError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &APIError{Kind: KindNetworkTimeout, Err: err}
	}

	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return &APIError{Kind: KindNetworkTimeout, Err: err}
	}

	return &APIError{Kind: KindNetworkUnreachable, Err: err}
}

// classifyStatus maps a non-2xx HTTP status and its body to an APIError.
func classifyStatus(status int, body []byte) *APIError {
	msg := serverMessage(body)

	switch {
	case status == 401:
		return &APIError{Kind: KindUnauthorized, Status: status, Message: msg}
	case status >= 500:
		return &APIError{Kind: KindServerError, Status: status, Message: msg}
	default:
		return &APIError{Kind: KindClientRequestError, Status: status, Message: msg}
	}
}

// serverMessage extracts a human-readable message from an error response
// body. The platform services use both {"error": ...} and {"message": ...}.
func serverMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if envelope.Error != "" {
		return envelope.Error
	}
	return envelope.Message
}
