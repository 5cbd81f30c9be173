// Curatorctl - Curator Movie Discovery and Creation Client
// Copyright 2026 Curator AI Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/curator-ai/curatorctl

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/goccy/go-json"

	"github.com/curator-ai/curatorctl/internal/models"
)

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// printMovies renders a movie list as an aligned table.
func printMovies(movies []models.Movie) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tYEAR\tRATING")
	for i := range movies {
		m := &movies[i]
		fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\n", m.ID, m.Title, m.Year(), m.VoteAverage)
	}
	_ = w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
