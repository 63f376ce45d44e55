// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/seedmatch/internal/logging"
	"github.com/pdiddy/seedmatch/pkg/types"
)

// ImportSummary holds counts from an import run.
type ImportSummary struct {
	Created int `json:"created" yaml:"created"`
	Updated int `json:"updated" yaml:"updated"`
	Failed  int `json:"failed" yaml:"failed"`
}

// Total returns the number of records processed.
func (s ImportSummary) Total() int {
	return s.Created + s.Updated + s.Failed
}

// ImportProposals upserts the proposals listed in a YAML or JSON file. New
// records keep the status in the file so seed data can arrive already
// published; a missing status means draft. Existing records may only change
// text while stored as drafts and may only change status along the
// lifecycle. Invalid or rejected records are counted and skipped.
func (s *Store) ImportProposals(ctx context.Context, path string) (ImportSummary, error) {
	var proposals []types.Proposal
	if err := readFile(path, &proposals); err != nil {
		return ImportSummary{}, err
	}

	var summary ImportSummary
	for _, p := range proposals {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		created, err := s.importProposal(ctx, p)
		if err != nil {
			s.logger.Warn("proposal import failed", logging.ProposalID(p.ID), zap.Error(err))
			summary.Failed++
			continue
		}
		if created {
			summary.Created++
		} else {
			summary.Updated++
		}
	}

	s.logger.Info("proposals imported",
		zap.String("path", path),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

func (s *Store) importProposal(ctx context.Context, p types.Proposal) (bool, error) {
	if p.Status == "" {
		p.Status = types.StatusDraft
	}
	if !p.Status.Valid() {
		return false, fmt.Errorf("%w: %q", types.ErrInvalidStatus, p.Status)
	}
	if err := checkProposal(p); err != nil {
		return false, err
	}
	if p.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return false, fmt.Errorf("generating proposal id: %w", err)
		}
		p.ID = id.String()
	}

	now := s.now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := scanProposal(tx.QueryRowContext(ctx,
		`SELECT `+proposalColumns+` FROM proposals WHERE id = ?`, p.ID))
	if errors.Is(err, sql.ErrNoRows) {
		if err := s.insertProposal(ctx, tx, p); err != nil {
			return false, err
		}
		return true, tx.Commit()
	}
	if err != nil {
		return false, fmt.Errorf("looking up proposal: %w", err)
	}

	// An existing record follows the same lifecycle as edits made through
	// UpdateProposal and SetStatus.
	if !sameContent(current, p) && !current.Editable() {
		return false, fmt.Errorf("proposal %s is %s: %w", p.ID, current.Status, ErrNotEditable)
	}
	if p.Status != current.Status && !CanTransition(current.Status, p.Status) {
		return false, fmt.Errorf("proposal %s from %s to %s: %w", p.ID, current.Status, p.Status, ErrInvalidTransition)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE proposals SET field = ?, title = ?, summary = ?, background = ?,
			objective = ?, approach = ?, expected_outcome = ?, status = ?, updated_at = ?
		 WHERE id = ?`,
		string(p.Field), p.Title, p.Summary, p.Background, p.Objective,
		p.Approach, p.ExpectedOutcome, string(p.Status), formatTime(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return false, fmt.Errorf("updating proposal %s: %w", p.ID, err)
	}
	return false, tx.Commit()
}

// sameContent reports whether a and b carry the same field and text.
func sameContent(a, b types.Proposal) bool {
	return a.Field == b.Field &&
		a.Title == b.Title &&
		a.Summary == b.Summary &&
		a.Background == b.Background &&
		a.Objective == b.Objective &&
		a.Approach == b.Approach &&
		a.ExpectedOutcome == b.ExpectedOutcome
}

// ImportResearchers upserts the researcher profiles listed in a YAML or
// JSON file.
func (s *Store) ImportResearchers(ctx context.Context, path string) (ImportSummary, error) {
	var profiles []types.ResearcherProfile
	if err := readFile(path, &profiles); err != nil {
		return ImportSummary{}, err
	}

	var summary ImportSummary
	for _, r := range profiles {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}

		existed := false
		if r.ID != "" {
			_, err := s.GetResearcher(ctx, r.ID)
			switch {
			case err == nil:
				existed = true
			case !errors.Is(err, ErrNotFound):
				s.logger.Warn("researcher import failed", logging.ResearcherID(r.ID), zap.Error(err))
				summary.Failed++
				continue
			}
		}

		if _, err := s.UpsertResearcher(ctx, r); err != nil {
			s.logger.Warn("researcher import failed", logging.ResearcherID(r.ID), zap.Error(err))
			summary.Failed++
			continue
		}
		if existed {
			summary.Updated++
		} else {
			summary.Created++
		}
	}

	s.logger.Info("researchers imported",
		zap.String("path", path),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

// ExportProposals writes the proposals matching filter to path as YAML when
// the extension is .yaml or .yml, and as indented JSON otherwise.
func (s *Store) ExportProposals(ctx context.Context, path string, filter ProposalFilter) (int, error) {
	proposals, err := s.ListProposals(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("querying for export: %w", err)
	}

	var data []byte
	if isYAML(path) {
		data, err = yaml.Marshal(proposals)
		if err != nil {
			return 0, fmt.Errorf("marshaling YAML: %w", err)
		}
	} else {
		data, err = json.MarshalIndent(proposals, "", "  ")
		if err != nil {
			return 0, fmt.Errorf("marshaling JSON: %w", err)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("creating export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}

	s.logger.Info("proposals exported", zap.String("path", path), zap.Int("count", len(proposals)))
	return len(proposals), nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// readFile decodes a YAML or JSON file into v, choosing by extension.
func readFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if isYAML(path) {
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
