// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// CitationMetrics summarizes a researcher's citation record.
type CitationMetrics struct {
	HIndex         int `json:"h_index" yaml:"h_index"`
	TotalCitations int `json:"total_citations" yaml:"total_citations"`
	I10Index       int `json:"i10_index" yaml:"i10_index"`
}

// Publication is a recent paper listed on a researcher profile.
type Publication struct {
	Title     string `json:"title" yaml:"title"`
	Journal   string `json:"journal" yaml:"journal"`
	Year      int    `json:"year" yaml:"year"`
	Citations int    `json:"citations" yaml:"citations"`
}

// Publications holds the total count and the most recent entries.
type Publications struct {
	Count  int           `json:"count" yaml:"count"`
	Recent []Publication `json:"recent" yaml:"recent"`
}

// Patent is a recent patent listed on a researcher profile.
type Patent struct {
	Title        string `json:"title" yaml:"title"`
	PatentNumber string `json:"patent_number" yaml:"patent_number"`
	Year         int    `json:"year" yaml:"year"`
}

// Patents holds the total count and the most recent entries.
type Patents struct {
	Count  int      `json:"count" yaml:"count"`
	Recent []Patent `json:"recent" yaml:"recent"`
}

// ResearcherProfile is a directory entry for an academic researcher.
type ResearcherProfile struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Title       string `json:"title" yaml:"title"`
	Institution string `json:"institution" yaml:"institution"`
	Department  string `json:"department" yaml:"department"`

	// Field is the researcher's primary discipline. It is free text in the
	// directory and is not restricted to the proposal Field set.
	Field string `json:"field" yaml:"field"`

	Specialization  string          `json:"specialization" yaml:"specialization"`
	Keywords        string          `json:"keywords" yaml:"keywords"`
	ResearchSummary string          `json:"research_summary" yaml:"research_summary"`
	CitationMetrics CitationMetrics `json:"citation_metrics" yaml:"citation_metrics"`
	Publications    Publications    `json:"publications" yaml:"publications"`
	Patents         Patents         `json:"patents" yaml:"patents"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// SearchFilters narrows a researcher directory search. Zero values disable
// the corresponding filter.
type SearchFilters struct {
	// Fields restricts results to researchers whose Field is listed.
	Fields []string `json:"fields" yaml:"fields"`

	// Institution is a case-insensitive substring of the institution name.
	Institution string `json:"institution" yaml:"institution"`

	// MinHIndex is the minimum h-index.
	MinHIndex int `json:"min_h_index" yaml:"min_h_index"`

	// HasPatents keeps only researchers with at least one patent.
	HasPatents bool `json:"has_patents" yaml:"has_patents"`
}
