// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists research proposals and researcher profiles in a
// local SQLite database and moves them in and out as YAML or JSON files.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/pdiddy/seedmatch/internal/logging"
	"github.com/pdiddy/seedmatch/pkg/types"
)

const dbFile = "seedmatch.db"

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var (
	// ErrNotFound is returned when a proposal or researcher does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotEditable is returned when updating a proposal that is not a draft.
	ErrNotEditable = errors.New("proposal is not editable")

	// ErrInvalidTransition is returned when a status change is not allowed.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrInvalidProposal is returned when a proposal is missing required data.
	ErrInvalidProposal = errors.New("invalid proposal")
)

// Store manages the seedmatch SQLite database.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
	now    func() time.Time
}

// Open opens or creates the database at cfg.DataDir/seedmatch.db and
// creates the schema if it does not exist. A nil logger disables logging.
func Open(cfg types.StoreConfig, logger *zap.Logger) (*Store, error) {
	if cfg.DataDir == "" {
		cfg.DataDir = types.DefaultAppConfig().Store.DataDir
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:     db,
		logger: logging.WithFields(logger, zap.String(logging.FieldDataDir, cfg.DataDir)),
		now:    time.Now,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	s.logger.Debug("store opened", zap.String("path", dbPath))
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS proposals (
			id TEXT PRIMARY KEY,
			field TEXT NOT NULL,
			title TEXT NOT NULL,
			summary TEXT,
			background TEXT,
			objective TEXT,
			approach TEXT,
			expected_outcome TEXT,
			status TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_proposals_status ON proposals(status)`,
		`CREATE INDEX IF NOT EXISTS idx_proposals_field ON proposals(field)`,
		`CREATE TABLE IF NOT EXISTS researchers (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			title TEXT,
			institution TEXT,
			department TEXT,
			field TEXT,
			specialization TEXT,
			keywords TEXT,
			research_summary TEXT,
			citation_metrics TEXT,
			publications TEXT,
			patents TEXT,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
