// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package matching

import (
	"math"

	"github.com/pdiddy/seedmatch/pkg/types"
)

// Component weights. They sum to 100.
const (
	fieldWeight     = 25
	keywordWeight   = 35
	approachWeight  = 25
	objectiveWeight = 15

	// relatedFieldCredit is the fraction of fieldWeight awarded to adjacent
	// fields (15 of 25 points).
	relatedFieldCredit = 0.6

	maxScore = 100
)

// relatedFields is the field adjacency table. Lookups go through
// fieldsRelated, which checks both directions.
var relatedFields = map[types.Field][]types.Field{
	types.FieldMedical:     {types.FieldChemistry, types.FieldIT},
	types.FieldChemistry:   {types.FieldMedical, types.FieldEngineering},
	types.FieldEngineering: {types.FieldChemistry, types.FieldIT},
	types.FieldIT:          {types.FieldEngineering, types.FieldMedical},
}

func fieldsRelated(a, b types.Field) bool {
	return contains(relatedFields[a], b) || contains(relatedFields[b], a)
}

func contains(fields []types.Field, f types.Field) bool {
	for _, x := range fields {
		if x == f {
			return true
		}
	}
	return false
}

// fieldSimilarity is 1 for the same field, relatedFieldCredit for adjacent
// fields, and 0 otherwise.
func fieldSimilarity(a, b types.Field) float64 {
	switch {
	case a == b:
		return 1
	case fieldsRelated(a, b):
		return relatedFieldCredit
	default:
		return 0
	}
}

// Breakdown holds the four normalized sub-scores, each in [0, 1], and the
// resulting weighted total.
type Breakdown struct {
	Field     float64 `json:"field" yaml:"field"`
	Keywords  float64 `json:"keywords" yaml:"keywords"`
	Approach  float64 `json:"approach" yaml:"approach"`
	Objective float64 `json:"objective" yaml:"objective"`
	Total     int     `json:"total" yaml:"total"`
}

// Weighted returns the unrounded weighted sum of the sub-scores.
func (b Breakdown) Weighted() float64 {
	return b.Field*fieldWeight +
		b.Keywords*keywordWeight +
		b.Approach*approachWeight +
		b.Objective*objectiveWeight
}

// ComputeBreakdown scores b against a component by component.
func ComputeBreakdown(a, b types.Proposal) Breakdown {
	bd := Breakdown{
		Field:     fieldSimilarity(a.Field, b.Field),
		Keywords:  jaccard(newTokenSet(extractKeywords(a)), newTokenSet(extractKeywords(b))),
		Approach:  textSimilarity(a.Approach, b.Approach),
		Objective: textSimilarity(a.Objective, b.Objective),
	}
	bd.Total = clampScore(bd.Weighted())
	return bd
}

// ComputeScore returns the 0-100 match score of b against a.
func ComputeScore(a, b types.Proposal) int {
	return ComputeBreakdown(a, b).Total
}

// clampScore rounds half away from zero and clamps to [0, maxScore].
func clampScore(v float64) int {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return int(math.Min(maxScore, math.Round(v)))
}
