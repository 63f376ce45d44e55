// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package matching

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/seedmatch/internal/logging"
)

// FormatTable writes matches as a human-readable table to w, followed by
// the reasons and themes of each match.
func FormatTable(out Output, w io.Writer) {
	if len(out.Results) == 0 {
		fmt.Fprintln(w, "No matches found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-5s  %-36s  %-10s  %s\n", "Rank", "Score", "ID", "Field", "Title")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, r := range out.Results {
		fmt.Fprintf(w, "%-4d  %-5d  %-36s  %-10s  %s\n",
			i+1, r.Score, r.Proposal.ID, r.Proposal.Field, logging.Truncate(r.Proposal.Title, 40))
	}

	for i, r := range out.Results {
		fmt.Fprintf(w, "\n#%d %s (%d)\n", i+1, r.Proposal.Title, r.Score)
		fmt.Fprintf(w, "  field %.2f  keywords %.2f  approach %.2f  objective %.2f\n",
			r.Components.Field, r.Components.Keywords, r.Components.Approach, r.Components.Objective)
		for _, reason := range r.Reasons {
			fmt.Fprintf(w, "  - %s\n", reason)
		}
		for _, theme := range r.PotentialCollaborations {
			fmt.Fprintf(w, "  * %s\n", theme)
		}
	}

	fmt.Fprintf(w, "\n%d matches", len(out.Results))
	if out.Skipped > 0 {
		fmt.Fprintf(w, " (%d candidates skipped)", out.Skipped)
	}
	fmt.Fprintln(w)
}

// FormatSummaryTable writes per-field aggregates to w.
func FormatSummaryTable(summaries []FieldSummary, w io.Writer) {
	fmt.Fprintf(w, "%-12s  %-10s  %-5s  %-5s  %s\n", "Field", "Label", "Count", "Avg", "Max")
	fmt.Fprintln(w, strings.Repeat("-", 50))
	for _, s := range summaries {
		fmt.Fprintf(w, "%-12s  %-10s  %-5d  %-5d  %d\n", s.Field, s.Label, s.Count, s.AvgScore, s.MaxScore)
	}
}

// FormatJSON writes the output as indented JSON to w.
func FormatJSON(out Output, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
