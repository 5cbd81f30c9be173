// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestSearchResponseUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "wrapped object", input: `{"movies":[{"id":1,"title":"Heat"},{"id":2,"title":"Ronin"}]}`, want: 2},
		{name: "bare array", input: `[{"id":3,"title":"Drive"}]`, want: 1},
		{name: "wrapped empty", input: `{"movies":[]}`, want: 0},
		{name: "empty object", input: `{}`, want: 0},
		{name: "empty array", input: `[]`, want: 0},
		{name: "scalar", input: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var resp SearchResponse
			err := json.Unmarshal([]byte(tt.input), &resp)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(resp.Movies) != tt.want {
				t.Errorf("got %d movies, want %d", len(resp.Movies), tt.want)
			}
		})
	}
}

func TestMovieHelpers(t *testing.T) {
	t.Parallel()

	m := &Movie{ID: 27205, Title: "Inception", ReleaseDate: "2010-07-16"}
	if got := m.ContentID(); got != "27205" {
		t.Errorf("ContentID() = %q, want %q", got, "27205")
	}
	if got := m.Year(); got != "2010" {
		t.Errorf("Year() = %q, want %q", got, "2010")
	}

	empty := &Movie{ID: 1}
	if got := empty.Year(); got != "" {
		t.Errorf("Year() on empty release date = %q, want empty", got)
	}
}
