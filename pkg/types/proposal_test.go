// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"testing"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		in      string
		want    Field
		wantErr bool
	}{
		{"medical", FieldMedical, false},
		{"engineering", FieldEngineering, false},
		{"chemistry", FieldChemistry, false},
		{"it", FieldIT, false},
		{"IT", "", true},
		{"biology", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseField(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidField) {
					t.Fatalf("ParseField(%q) error = %v, want ErrInvalidField", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseField(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseField(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFieldLabel(t *testing.T) {
	if got := FieldIT.Label(); got != "情報工学" {
		t.Errorf("FieldIT.Label() = %q", got)
	}
	if got := Field("physics").Label(); got != "physics" {
		t.Errorf("unknown field label = %q, want verbatim", got)
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"draft", "published", "archived"} {
		if _, err := ParseStatus(s); err != nil {
			t.Errorf("ParseStatus(%q): %v", s, err)
		}
	}
	if _, err := ParseStatus("deleted"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("ParseStatus(deleted) error = %v, want ErrInvalidStatus", err)
	}
}

func TestProposalEditable(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusDraft, true},
		{StatusPublished, false},
		{StatusArchived, false},
	}
	for _, tt := range tests {
		if got := (Proposal{Status: tt.status}).Editable(); got != tt.want {
			t.Errorf("Editable() with %s = %v, want %v", tt.status, got, tt.want)
		}
	}
}
