// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/seedmatch/internal/matching"
	"github.com/pdiddy/seedmatch/internal/store"
	"github.com/pdiddy/seedmatch/pkg/types"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(viper.New())
	require.NoError(t, err)
	assert.Equal(t, types.DefaultAppConfig(), cfg)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seedmatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
store:
  data_dir: /tmp/seeds
match:
  min_score: 60
  max_results: 5
log:
  json: true
`), 0o644))

	t.Setenv("SEEDMATCH_MATCH_CONVERGENCE_FACTOR", "80")

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/seeds", cfg.Store.DataDir)
	assert.Equal(t, 60, cfg.Match.MinScore)
	assert.Equal(t, 5, cfg.Match.MaxResults)
	assert.Equal(t, 80, cfg.Match.ConvergenceFactor)
	assert.True(t, cfg.Log.JSON)
	assert.False(t, cfg.Log.Debug)
}

func TestLoadConfigRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
	}{
		{"min score", "match.min_score", 101},
		{"convergence", "match.convergence_factor", -1},
		{"max results", "match.max_results", -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			v.Set(tt.key, tt.val)
			_, err := loadConfig(v)
			assert.Error(t, err)
		})
	}
}

func TestWriteMatchOutput(t *testing.T) {
	out := matching.Output{Results: []matching.Result{
		{Proposal: types.Proposal{ID: "a", Field: types.FieldIT, Title: "A"}, Score: 90},
		{Proposal: types.Proposal{ID: "b", Field: types.FieldIT, Title: "B"}, Score: 70},
	}}

	var buf bytes.Buffer
	require.NoError(t, writeMatchOutput(out, matchOptions{Summary: true}, &buf))
	assert.Contains(t, buf.String(), "情報工学")
	assert.Contains(t, buf.String(), "80")

	buf.Reset()
	require.NoError(t, writeMatchOutput(matching.Output{}, matchOptions{Convergence: 90}, &buf))
	assert.Contains(t, buf.String(), "No matches found.")
	assert.Contains(t, buf.String(), matching.EmptyHint(90))
}

func TestFormatProposalTable(t *testing.T) {
	var buf bytes.Buffer
	formatProposalTable([]types.Proposal{{ID: "p1", Status: types.StatusDraft, Field: types.FieldIT, Title: "t"}}, &buf)
	assert.Contains(t, buf.String(), "p1")
	assert.Contains(t, buf.String(), "1 proposals")
}

func TestSeedDataMatchesEndToEnd(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(types.StoreConfig{DataDir: t.TempDir()}, nil)
	require.NoError(t, err)
	defer s.Close()

	summary, err := s.ImportProposals(ctx, filepath.Join("..", "..", "testdata", "proposals.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Created)

	target, err := s.GetProposal(ctx, "seed-medical-1")
	require.NoError(t, err)
	pool, err := s.CandidatePool(ctx, target.ID)
	require.NoError(t, err)
	assert.Len(t, pool, 3)

	out := matching.NewMatcher(nil).Match(target, pool, matching.DefaultConvergenceFactor)
	require.NotEmpty(t, out.Results)
	assert.Equal(t, "seed-medical-2", out.Results[0].Proposal.ID)
	assert.Zero(t, out.Skipped)
	for _, r := range out.Results {
		assert.NotEqual(t, "seed-eng-draft", r.Proposal.ID)
	}

	researchers, err := s.ImportResearchers(ctx, filepath.Join("..", "..", "testdata", "researchers.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 2, researchers.Created)
}
