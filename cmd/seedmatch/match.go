// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/seedmatch/internal/logging"
	"github.com/pdiddy/seedmatch/internal/matching"
	"github.com/pdiddy/seedmatch/pkg/types"
)

var matchCmd = &cobra.Command{
	Use:   "match <proposal-id>",
	Short: "Rank published proposals against a target proposal",
	Long: `Match scores every published proposal (other than the target) against the
target by field, keyword, approach, and objective similarity and prints those
scoring at least match.min_score, best first, with reasons and suggested
collaboration themes.

--convergence (0-100) records whether you are looking for similar (low) or
cross-field (high) partners. It does not change scores.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

// matchOptions holds the resolved match flags.
type matchOptions struct {
	Convergence int
	Field       types.Field
	Summary     bool
	JSON        bool
}

func runMatch(cmd *cobra.Command, args []string) error {
	opts, err := matchOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	target, err := s.GetProposal(ctx, args[0])
	if err != nil {
		return err
	}
	pool, err := s.CandidatePool(ctx, target.ID)
	if err != nil {
		return err
	}

	m := matching.NewMatcher(logging.WithFields(logger, logging.ProposalID(target.ID)))
	m.MinScore = appCfg.Match.MinScore

	out := m.Match(target, pool, opts.Convergence)
	out.Results = matching.FilterByField(out.Results, opts.Field)
	if limit := appCfg.Match.MaxResults; limit > 0 && len(out.Results) > limit {
		out.Results = out.Results[:limit]
	}

	logger.Info("match complete",
		zap.Int("candidates", len(pool)),
		zap.Int("matches", len(out.Results)),
		zap.Int("skipped", out.Skipped),
	)

	return writeMatchOutput(out, opts, os.Stdout)
}

func writeMatchOutput(out matching.Output, opts matchOptions, w io.Writer) error {
	if opts.Summary {
		summaries, err := matching.SummarizeByField(out.Results)
		if err != nil {
			return fmt.Errorf("summarizing matches: %w", err)
		}
		if opts.JSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(summaries)
		}
		matching.FormatSummaryTable(summaries, w)
		return nil
	}

	if opts.JSON {
		return matching.FormatJSON(out, w)
	}

	matching.FormatTable(out, w)
	if len(out.Results) == 0 {
		fmt.Fprintln(w, matching.EmptyHint(opts.Convergence))
	}
	return nil
}

func matchOptionsFromFlags(cmd *cobra.Command) (matchOptions, error) {
	opts := matchOptions{Convergence: appCfg.Match.ConvergenceFactor}

	if cmd.Flags().Changed("convergence") {
		opts.Convergence, _ = cmd.Flags().GetInt("convergence")
	}
	if err := checkConvergence(opts.Convergence); err != nil {
		return opts, err
	}

	if raw, _ := cmd.Flags().GetString("field"); raw != "" {
		f, err := types.ParseField(raw)
		if err != nil {
			return opts, err
		}
		opts.Field = f
	}

	opts.Summary, _ = cmd.Flags().GetBool("summary")
	opts.JSON, _ = cmd.Flags().GetBool("json")
	return opts, nil
}

func init() {
	matchCmd.Flags().Int("convergence", matching.DefaultConvergenceFactor, "0 = similar research, 100 = cross-field combinations")
	matchCmd.Flags().String("field", "", "only show matches in this research field")
	matchCmd.Flags().Bool("summary", false, "print per-field counts and scores instead of matches")
	matchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(matchCmd)
}
