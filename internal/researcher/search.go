// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package researcher filters the researcher directory.
package researcher

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/seedmatch/internal/logging"
	"github.com/pdiddy/seedmatch/pkg/types"
)

// Search returns the profiles that match query and every active filter,
// in input order. The query is a case-insensitive substring matched
// against name, research summary, specialization, keywords, and recent
// publication titles; an empty query matches everything.
func Search(profiles []types.ResearcherProfile, query string, filters types.SearchFilters) []types.ResearcherProfile {
	query = strings.ToLower(strings.TrimSpace(query))
	institution := strings.ToLower(strings.TrimSpace(filters.Institution))

	results := []types.ResearcherProfile{}
	for _, p := range profiles {
		if !matchesQuery(p, query) {
			continue
		}
		if len(filters.Fields) > 0 && !containsString(filters.Fields, p.Field) {
			continue
		}
		if institution != "" && !strings.Contains(strings.ToLower(p.Institution), institution) {
			continue
		}
		if filters.MinHIndex > 0 && p.CitationMetrics.HIndex < filters.MinHIndex {
			continue
		}
		if filters.HasPatents && p.Patents.Count <= 0 {
			continue
		}
		results = append(results, p)
	}
	return results
}

func matchesQuery(p types.ResearcherProfile, query string) bool {
	if query == "" {
		return true
	}
	texts := []string{p.Name, p.ResearchSummary, p.Specialization, p.Keywords}
	for _, pub := range p.Publications.Recent {
		texts = append(texts, pub.Title)
	}
	for _, text := range texts {
		if strings.Contains(strings.ToLower(text), query) {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// Fields returns the distinct non-empty fields in first-seen order.
func Fields(profiles []types.ResearcherProfile) []string {
	return unique(profiles, func(p types.ResearcherProfile) string { return p.Field })
}

// Institutions returns the distinct non-empty institutions in first-seen
// order.
func Institutions(profiles []types.ResearcherProfile) []string {
	return unique(profiles, func(p types.ResearcherProfile) string { return p.Institution })
}

func unique(profiles []types.ResearcherProfile, key func(types.ResearcherProfile) string) []string {
	seen := make(map[string]bool)
	values := []string{}
	for _, p := range profiles {
		v := strings.TrimSpace(key(p))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}

// FormatTable writes profiles as a human-readable table to w.
func FormatTable(profiles []types.ResearcherProfile, w io.Writer) {
	if len(profiles) == 0 {
		fmt.Fprintln(w, "No researchers found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-20s  %-20s  %-12s  %-6s  %s\n", "#", "Name", "Institution", "Field", "h", "Patents")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	for i, p := range profiles {
		fmt.Fprintf(w, "%-4d  %-20s  %-20s  %-12s  %-6d  %d\n",
			i+1, logging.Truncate(p.Name, 20), logging.Truncate(p.Institution, 20), p.Field, p.CitationMetrics.HIndex, p.Patents.Count)
	}

	fmt.Fprintf(w, "\n%d researchers\n", len(profiles))
}

// FormatJSON writes profiles as indented JSON to w.
func FormatJSON(profiles []types.ResearcherProfile, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(profiles)
}
