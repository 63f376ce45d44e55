// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pdiddy/seedmatch/internal/logging"
	"github.com/pdiddy/seedmatch/pkg/types"
)

// ProposalFilter narrows ListProposals. Empty fields match everything.
type ProposalFilter struct {
	Status types.Status
	Field  types.Field
}

// transitions lists the statuses each status may move to.
var transitions = map[types.Status][]types.Status{
	types.StatusDraft:     {types.StatusPublished, types.StatusArchived},
	types.StatusPublished: {types.StatusDraft, types.StatusArchived},
}

// CanTransition reports whether a proposal may move from one status to another.
func CanTransition(from, to types.Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

const proposalColumns = `id, field, title, summary, background, objective,
	approach, expected_outcome, status, created_at, updated_at`

// CreateProposal stores p as a new draft. It assigns a UUIDv7 when p has no
// id and stamps both timestamps.
func (s *Store) CreateProposal(ctx context.Context, p types.Proposal) (types.Proposal, error) {
	if err := checkProposal(p); err != nil {
		return types.Proposal{}, err
	}

	if p.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return types.Proposal{}, fmt.Errorf("generating proposal id: %w", err)
		}
		p.ID = id.String()
	}

	now := s.now().UTC()
	p.Status = types.StatusDraft
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.insertProposal(ctx, s.db, p); err != nil {
		return types.Proposal{}, err
	}

	s.logger.Info("proposal created", logging.ProposalID(p.ID), zap.String("field", string(p.Field)))
	return p, nil
}

// GetProposal returns the proposal with the given id.
func (s *Store) GetProposal(ctx context.Context, id string) (types.Proposal, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+proposalColumns+` FROM proposals WHERE id = ?`, id)

	p, err := scanProposal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Proposal{}, fmt.Errorf("proposal %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return types.Proposal{}, fmt.Errorf("looking up proposal: %w", err)
	}
	return p, nil
}

// ListProposals returns proposals matching filter, oldest first.
func (s *Store) ListProposals(ctx context.Context, filter ProposalFilter) ([]types.Proposal, error) {
	var (
		qb   strings.Builder
		args []any
	)

	qb.WriteString(`SELECT ` + proposalColumns + ` FROM proposals WHERE 1=1`)

	if filter.Status != "" {
		qb.WriteString(` AND status = ?`)
		args = append(args, string(filter.Status))
	}
	if filter.Field != "" {
		qb.WriteString(` AND field = ?`)
		args = append(args, string(filter.Field))
	}

	qb.WriteString(` ORDER BY created_at, id`)

	return s.queryProposals(ctx, qb.String(), args...)
}

// CandidatePool returns the published proposals other than targetID, in
// the order ListProposals uses.
func (s *Store) CandidatePool(ctx context.Context, targetID string) ([]types.Proposal, error) {
	return s.queryProposals(ctx,
		`SELECT `+proposalColumns+` FROM proposals
		 WHERE status = ? AND id <> ?
		 ORDER BY created_at, id`,
		string(types.StatusPublished), targetID)
}

// UpdateProposal replaces the text fields and field of a draft proposal.
// Status and created_at are left unchanged.
func (s *Store) UpdateProposal(ctx context.Context, p types.Proposal) (types.Proposal, error) {
	current, err := s.GetProposal(ctx, p.ID)
	if err != nil {
		return types.Proposal{}, err
	}
	if !current.Editable() {
		return types.Proposal{}, fmt.Errorf("proposal %s is %s: %w", p.ID, current.Status, ErrNotEditable)
	}
	if err := checkProposal(p); err != nil {
		return types.Proposal{}, err
	}

	p.Status = current.Status
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = s.now().UTC()

	_, err = s.db.ExecContext(ctx,
		`UPDATE proposals SET field = ?, title = ?, summary = ?, background = ?,
			objective = ?, approach = ?, expected_outcome = ?, updated_at = ?
		 WHERE id = ?`,
		string(p.Field), p.Title, p.Summary, p.Background,
		p.Objective, p.Approach, p.ExpectedOutcome, formatTime(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return types.Proposal{}, fmt.Errorf("updating proposal: %w", err)
	}

	s.logger.Info("proposal updated", logging.ProposalID(p.ID))
	return p, nil
}

// SetStatus moves a proposal to status when the lifecycle allows it:
// draft and published may swap, and either may be archived.
func (s *Store) SetStatus(ctx context.Context, id string, status types.Status) (types.Proposal, error) {
	if !status.Valid() {
		return types.Proposal{}, fmt.Errorf("%w: %q", types.ErrInvalidStatus, status)
	}

	p, err := s.GetProposal(ctx, id)
	if err != nil {
		return types.Proposal{}, err
	}
	if !CanTransition(p.Status, status) {
		return types.Proposal{}, fmt.Errorf("proposal %s from %s to %s: %w", id, p.Status, status, ErrInvalidTransition)
	}

	p.Status = status
	p.UpdatedAt = s.now().UTC()

	_, err = s.db.ExecContext(ctx,
		`UPDATE proposals SET status = ?, updated_at = ? WHERE id = ?`,
		string(p.Status), formatTime(p.UpdatedAt), id,
	)
	if err != nil {
		return types.Proposal{}, fmt.Errorf("updating status: %w", err)
	}

	s.logger.Info("proposal status changed", logging.ProposalID(id), zap.String("status", string(status)))
	return p, nil
}

// Publish offers a draft proposal as a match candidate.
func (s *Store) Publish(ctx context.Context, id string) (types.Proposal, error) {
	return s.SetStatus(ctx, id, types.StatusPublished)
}

// Unpublish returns a published proposal to draft.
func (s *Store) Unpublish(ctx context.Context, id string) (types.Proposal, error) {
	return s.SetStatus(ctx, id, types.StatusDraft)
}

// Archive retires a draft or published proposal.
func (s *Store) Archive(ctx context.Context, id string) (types.Proposal, error) {
	return s.SetStatus(ctx, id, types.StatusArchived)
}

// DeleteProposal removes a proposal.
func (s *Store) DeleteProposal(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM proposals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting proposal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting proposal: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("proposal %s: %w", id, ErrNotFound)
	}

	s.logger.Info("proposal deleted", logging.ProposalID(id))
	return nil
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) insertProposal(ctx context.Context, db execer, p types.Proposal) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO proposals (`+proposalColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, string(p.Field), p.Title, p.Summary, p.Background, p.Objective,
		p.Approach, p.ExpectedOutcome, string(p.Status),
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting proposal %s: %w", p.ID, err)
	}
	return nil
}

func (s *Store) queryProposals(ctx context.Context, query string, args ...any) ([]types.Proposal, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying proposals: %w", err)
	}
	defer rows.Close()

	proposals := []types.Proposal{}
	for rows.Next() {
		p, err := scanProposal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		proposals = append(proposals, p)
	}
	return proposals, rows.Err()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProposal(row scanner) (types.Proposal, error) {
	var (
		p                    types.Proposal
		field, status        string
		summary, background  sql.NullString
		objective, approach  sql.NullString
		expectedOutcome      sql.NullString
		createdAt, updatedAt string
	)
	if err := row.Scan(
		&p.ID, &field, &p.Title, &summary, &background, &objective,
		&approach, &expectedOutcome, &status, &createdAt, &updatedAt,
	); err != nil {
		return types.Proposal{}, err
	}

	p.Field = types.Field(field)
	p.Status = types.Status(status)
	p.Summary = summary.String
	p.Background = background.String
	p.Objective = objective.String
	p.Approach = approach.String
	p.ExpectedOutcome = expectedOutcome.String
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}

// checkProposal validates the user-supplied parts of a proposal.
func checkProposal(p types.Proposal) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidProposal)
	}
	if !p.Field.Valid() {
		return fmt.Errorf("%w: %q", types.ErrInvalidField, p.Field)
	}
	return nil
}
