// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for seedmatch: research
// proposals, researcher profiles, and configuration.
package types

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidField is returned when a proposal names an unknown research field.
	ErrInvalidField = errors.New("invalid research field")

	// ErrInvalidStatus is returned when a proposal carries an unknown status.
	ErrInvalidStatus = errors.New("invalid proposal status")
)

// Field is the research category a proposal belongs to.
type Field string

const (
	FieldMedical     Field = "medical"
	FieldEngineering Field = "engineering"
	FieldChemistry   Field = "chemistry"
	FieldIT          Field = "it"
)

// Fields lists the known research fields in display order.
var Fields = []Field{FieldMedical, FieldEngineering, FieldChemistry, FieldIT}

var fieldLabels = map[Field]string{
	FieldMedical:     "医学・薬学",
	FieldEngineering: "工学",
	FieldChemistry:   "化学",
	FieldIT:          "情報工学",
}

// Label returns the display label for the field. Unknown fields are
// returned verbatim.
func (f Field) Label() string {
	if label, ok := fieldLabels[f]; ok {
		return label
	}
	return string(f)
}

// Valid reports whether f is one of the known research fields.
func (f Field) Valid() bool {
	_, ok := fieldLabels[f]
	return ok
}

// ParseField validates s as a research field.
func ParseField(s string) (Field, error) {
	f := Field(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidField, s)
	}
	return f, nil
}

// Status is the publication state of a proposal. Only published proposals
// are offered to others as match candidates.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// ParseStatus validates s as a proposal status.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

// Proposal is a research seed submitted by an academic user.
type Proposal struct {
	// ID is the unique identifier (UUIDv7 when assigned by the store).
	ID string `json:"id" yaml:"id"`

	// Field is the research category.
	Field Field `json:"field" yaml:"field"`

	// Title is the proposal title.
	Title string `json:"title" yaml:"title"`

	// Summary is a short abstract of the proposal.
	Summary string `json:"summary" yaml:"summary"`

	// Background describes the context motivating the research.
	Background string `json:"background" yaml:"background"`

	// Objective states what the research intends to achieve.
	Objective string `json:"objective" yaml:"objective"`

	// Approach describes methods and procedures.
	Approach string `json:"approach" yaml:"approach"`

	// ExpectedOutcome describes the anticipated results.
	ExpectedOutcome string `json:"expected_outcome" yaml:"expected_outcome"`

	// Status is draft, published, or archived.
	Status Status `json:"status" yaml:"status"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// Editable reports whether the proposal's text fields may be changed.
func (p Proposal) Editable() bool {
	return p.Status == StatusDraft
}
