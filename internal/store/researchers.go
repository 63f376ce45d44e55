// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pdiddy/seedmatch/internal/logging"
	"github.com/pdiddy/seedmatch/pkg/types"
)

// UpsertResearcher inserts or replaces a researcher profile. A profile
// without an id gets a UUIDv7. created_at is kept on update.
func (s *Store) UpsertResearcher(ctx context.Context, r types.ResearcherProfile) (types.ResearcherProfile, error) {
	if strings.TrimSpace(r.Name) == "" {
		return types.ResearcherProfile{}, fmt.Errorf("researcher %s: name is required", r.ID)
	}
	if r.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return types.ResearcherProfile{}, fmt.Errorf("generating researcher id: %w", err)
		}
		r.ID = id.String()
	}

	now := s.now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now

	metricsJSON, _ := json.Marshal(r.CitationMetrics)
	pubsJSON, _ := json.Marshal(r.Publications)
	patentsJSON, _ := json.Marshal(r.Patents)

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO researchers (id, name, title, institution, department, field,
			specialization, keywords, research_summary, citation_metrics,
			publications, patents, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name=excluded.name, title=excluded.title, institution=excluded.institution,
			department=excluded.department, field=excluded.field,
			specialization=excluded.specialization, keywords=excluded.keywords,
			research_summary=excluded.research_summary,
			citation_metrics=excluded.citation_metrics,
			publications=excluded.publications, patents=excluded.patents,
			updated_at=excluded.updated_at`,
		r.ID, r.Name, r.Title, r.Institution, r.Department, r.Field,
		r.Specialization, r.Keywords, r.ResearchSummary, string(metricsJSON),
		string(pubsJSON), string(patentsJSON),
		formatTime(r.CreatedAt), formatTime(r.UpdatedAt),
	)
	if err != nil {
		return types.ResearcherProfile{}, fmt.Errorf("upserting researcher %s: %w", r.ID, err)
	}

	s.logger.Debug("researcher stored", logging.ResearcherID(r.ID))
	return r, nil
}

const researcherColumns = `id, name, title, institution, department, field,
	specialization, keywords, research_summary, citation_metrics,
	publications, patents, created_at, updated_at`

// GetResearcher returns the researcher with the given id.
func (s *Store) GetResearcher(ctx context.Context, id string) (types.ResearcherProfile, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+researcherColumns+` FROM researchers WHERE id = ?`, id)

	r, err := scanResearcher(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.ResearcherProfile{}, fmt.Errorf("researcher %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return types.ResearcherProfile{}, fmt.Errorf("looking up researcher: %w", err)
	}
	return r, nil
}

// ListResearchers returns all researcher profiles ordered by name, then id.
func (s *Store) ListResearchers(ctx context.Context) ([]types.ResearcherProfile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+researcherColumns+` FROM researchers ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("querying researchers: %w", err)
	}
	defer rows.Close()

	profiles := []types.ResearcherProfile{}
	for rows.Next() {
		r, err := scanResearcher(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		profiles = append(profiles, r)
	}
	return profiles, rows.Err()
}

func scanResearcher(row scanner) (types.ResearcherProfile, error) {
	var (
		r                    types.ResearcherProfile
		title, institution   sql.NullString
		department, field    sql.NullString
		specialization       sql.NullString
		keywords, summary    sql.NullString
		metricsJSON          sql.NullString
		pubsJSON             sql.NullString
		patentsJSON          sql.NullString
		createdAt, updatedAt string
	)
	if err := row.Scan(
		&r.ID, &r.Name, &title, &institution, &department, &field,
		&specialization, &keywords, &summary, &metricsJSON,
		&pubsJSON, &patentsJSON, &createdAt, &updatedAt,
	); err != nil {
		return types.ResearcherProfile{}, err
	}

	r.Title = title.String
	r.Institution = institution.String
	r.Department = department.String
	r.Field = field.String
	r.Specialization = specialization.String
	r.Keywords = keywords.String
	r.ResearchSummary = summary.String

	if metricsJSON.Valid {
		json.Unmarshal([]byte(metricsJSON.String), &r.CitationMetrics)
	}
	if pubsJSON.Valid {
		json.Unmarshal([]byte(pubsJSON.String), &r.Publications)
	}
	if patentsJSON.Valid {
		json.Unmarshal([]byte(patentsJSON.String), &r.Patents)
	}

	r.CreatedAt = parseTime(createdAt)
	r.UpdatedAt = parseTime(updatedAt)
	return r, nil
}
