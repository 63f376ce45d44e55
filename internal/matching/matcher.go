// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package matching scores published research proposals against a target
// proposal and explains each match.
//
// Scoring is a weighted sum of four set-overlap components (field, keywords,
// approach, objective). It is deterministic, performs no I/O, and treats its
// inputs as read-only snapshots.
package matching

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/pdiddy/seedmatch/pkg/types"
)

// DefaultMinScore is the lowest score reported by FindMatches.
const DefaultMinScore = 50

// DefaultConvergenceFactor is the slider midpoint used when callers have no
// preference.
const DefaultConvergenceFactor = 50

// Result is one candidate proposal with its score and explanations.
type Result struct {
	Proposal types.Proposal `json:"proposal" yaml:"proposal"`

	// Score is the overall match score in [0, 100].
	Score int `json:"score" yaml:"score"`

	// Components is the per-component breakdown behind Score.
	Components Breakdown `json:"components" yaml:"components"`

	// Reasons are human-readable explanations in evaluation order.
	Reasons []string `json:"reasons" yaml:"reasons"`

	// PotentialCollaborations are suggested joint research themes.
	PotentialCollaborations []string `json:"potential_collaborations" yaml:"potential_collaborations"`
}

// Output holds the matches of one run and the candidates that were skipped
// because they could not be evaluated.
type Output struct {
	Results    []Result `json:"results"`
	Skipped    int      `json:"skipped"`
	SkippedIDs []string `json:"skipped_ids,omitempty"`
}

// Matcher ranks candidate proposals against a target.
type Matcher struct {
	// MinScore is the lowest score kept in the output.
	MinScore int

	logger *zap.Logger
}

// NewMatcher returns a Matcher with DefaultMinScore. A nil logger disables
// logging.
func NewMatcher(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{MinScore: DefaultMinScore, logger: logger}
}

// FindMatches returns the published candidates whose unrounded weighted
// score is at least MinScore, best first by that unrounded score. Ties keep
// pool order. The target is never
// matched with itself. Failures are logged and yield an empty slice.
//
// convergenceFactor is accepted for the caller's 0-100 slider and does not
// influence scoring.
func (m *Matcher) FindMatches(target types.Proposal, pool []types.Proposal, convergenceFactor int) []Result {
	return m.Match(target, pool, convergenceFactor).Results
}

// Match is FindMatches with skip accounting. A candidate with no id or an
// unknown status is skipped and counted rather than aborting the run.
func (m *Matcher) Match(target types.Proposal, pool []types.Proposal, convergenceFactor int) Output {
	out := Output{Results: []Result{}}

	if target.ID == "" {
		err := fmt.Errorf("target proposal has no id")
		m.logger.Error("matching failed", zap.String("target_id", target.ID), zap.Error(err))
		return out
	}

	m.logger.Debug("matching started",
		zap.String("target_id", target.ID),
		zap.Int("pool_size", len(pool)),
		zap.Int("convergence_factor", convergenceFactor),
		zap.String("orientation", string(Orientation(convergenceFactor))),
	)

	for _, candidate := range pool {
		if candidate.ID == target.ID {
			continue
		}

		if err := validate(candidate); err != nil {
			m.skip(&out, candidate, err)
			continue
		}

		if candidate.Status != types.StatusPublished {
			continue
		}

		result, err := evaluate(target, candidate)
		if err != nil {
			m.skip(&out, candidate, err)
			continue
		}

		if result.Components.Weighted() < float64(m.MinScore) {
			continue
		}
		out.Results = append(out.Results, result)
	}

	sort.SliceStable(out.Results, func(i, j int) bool {
		return out.Results[i].Components.Weighted() > out.Results[j].Components.Weighted()
	})

	m.logger.Debug("matching finished",
		zap.String("target_id", target.ID),
		zap.Int("matches", len(out.Results)),
		zap.Int("skipped", out.Skipped),
	)

	return out
}

func (m *Matcher) skip(out *Output, candidate types.Proposal, err error) {
	out.Skipped++
	out.SkippedIDs = append(out.SkippedIDs, candidate.ID)
	m.logger.Warn("skipping candidate",
		zap.String("candidate_id", candidate.ID),
		zap.Error(err),
	)
}

// validate rejects candidates that cannot take part in matching.
func validate(p types.Proposal) error {
	if p.ID == "" {
		return fmt.Errorf("proposal has no id")
	}
	if !p.Status.Valid() {
		return fmt.Errorf("proposal %s: %w: %q", p.ID, types.ErrInvalidStatus, p.Status)
	}
	return nil
}

// evaluate scores one candidate, converting a panic into an error so a
// single bad record cannot abort the run.
func evaluate(target, candidate types.Proposal) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("evaluating candidate %s: %v", candidate.ID, r)
		}
	}()

	bd := ComputeBreakdown(target, candidate)
	return Result{
		Proposal:                candidate,
		Score:                   bd.Total,
		Components:              bd,
		Reasons:                 matchReasons(target, candidate),
		PotentialCollaborations: collaborationThemes(target, candidate),
	}, nil
}
