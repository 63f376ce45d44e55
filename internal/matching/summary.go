// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package matching

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/pdiddy/seedmatch/pkg/types"
)

// FieldSummary aggregates the matches that fall in one research field.
type FieldSummary struct {
	Field    types.Field `json:"field" yaml:"field"`
	Label    string      `json:"label" yaml:"label"`
	Count    int         `json:"count" yaml:"count"`
	AvgScore int         `json:"avg_score" yaml:"avg_score"`
	MaxScore int         `json:"max_score" yaml:"max_score"`
}

// SummarizeByField groups results by candidate field in first-seen order.
// AvgScore is rounded to the nearest integer.
func SummarizeByField(results []Result) ([]FieldSummary, error) {
	var order []types.Field
	scores := make(map[types.Field]stats.Float64Data)

	for _, r := range results {
		f := r.Proposal.Field
		if _, ok := scores[f]; !ok {
			order = append(order, f)
		}
		scores[f] = append(scores[f], float64(r.Score))
	}

	summaries := make([]FieldSummary, 0, len(order))
	for _, f := range order {
		data := scores[f]

		mean, err := stats.Mean(data)
		if err != nil {
			return nil, err
		}
		max, err := stats.Max(data)
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, FieldSummary{
			Field:    f,
			Label:    f.Label(),
			Count:    data.Len(),
			AvgScore: int(math.Round(mean)),
			MaxScore: int(max),
		})
	}
	return summaries, nil
}

// FilterByField returns the results whose candidate is in field f, keeping
// their order. An empty f returns results unchanged.
func FilterByField(results []Result, f types.Field) []Result {
	if f == "" {
		return results
	}
	filtered := []Result{}
	for _, r := range results {
		if r.Proposal.Field == f {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// OrientationKind describes where the convergence slider sits.
type OrientationKind string

const (
	OrientationConvergent OrientationKind = "convergent"
	OrientationBalanced   OrientationKind = "balanced"
	OrientationDivergent  OrientationKind = "divergent"
)

// Orientation classifies a 0-100 convergence factor: below 30 favours
// similar research, above 70 favours cross-field combinations.
func Orientation(convergenceFactor int) OrientationKind {
	switch {
	case convergenceFactor < 30:
		return OrientationConvergent
	case convergenceFactor > 70:
		return OrientationDivergent
	default:
		return OrientationBalanced
	}
}

// EmptyHint suggests how to adjust the slider when a run finds no matches.
func EmptyHint(convergenceFactor int) string {
	switch Orientation(convergenceFactor) {
	case OrientationConvergent:
		return "類似の研究シーズが見つかりませんでした。異分野との組み合わせを探すには --convergence を大きくしてください。"
	case OrientationDivergent:
		return "異分野との組み合わせが見つかりませんでした。類似分野での協力を探すには --convergence を小さくしてください。"
	default:
		return "マッチする研究シーズが見つかりませんでした。--convergence を変えて再度お試しください。"
	}
}
