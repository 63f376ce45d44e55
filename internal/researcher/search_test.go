// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package researcher

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/seedmatch/pkg/types"
)

func directory() []types.ResearcherProfile {
	return []types.ResearcherProfile{
		{
			ID: "r1", Name: "Yamada Taro", Institution: "東京大学", Field: "情報工学",
			Specialization: "機械学習", Keywords: "deep learning, 画像解析",
			CitationMetrics: types.CitationMetrics{HIndex: 30},
			Patents:         types.Patents{Count: 2},
		},
		{
			ID: "r2", Name: "Sato Hanako", Institution: "京都大学", Field: "医学・薬学",
			ResearchSummary: "がん免疫療法の研究",
			CitationMetrics: types.CitationMetrics{HIndex: 12},
			Publications: types.Publications{
				Count:  1,
				Recent: []types.Publication{{Title: "Tumor Microenvironment"}},
			},
		},
		{
			ID: "r3", Name: "Suzuki Ichiro", Institution: "東京工業大学", Field: "工学",
			CitationMetrics: types.CitationMetrics{HIndex: 18},
			Patents:         types.Patents{Count: 1},
		},
		{ID: "r4", Name: "Tanaka", Field: "情報工学"},
	}
}

func ids(profiles []types.ResearcherProfile) []string {
	out := []string{}
	for _, p := range profiles {
		out = append(out, p.ID)
	}
	return out
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		filters types.SearchFilters
		want    []string
	}{
		{"empty query matches all", "", types.SearchFilters{}, []string{"r1", "r2", "r3", "r4"}},
		{"name case-insensitive", "  yamada ", types.SearchFilters{}, []string{"r1"}},
		{"research summary", "免疫", types.SearchFilters{}, []string{"r2"}},
		{"specialization", "機械学習", types.SearchFilters{}, []string{"r1"}},
		{"keywords", "DEEP", types.SearchFilters{}, []string{"r1"}},
		{"publication title", "microenvironment", types.SearchFilters{}, []string{"r2"}},
		{"no match", "quantum", types.SearchFilters{}, []string{}},
		{"field filter", "", types.SearchFilters{Fields: []string{"情報工学"}}, []string{"r1", "r4"}},
		{"multiple fields", "", types.SearchFilters{Fields: []string{"工学", "医学・薬学"}}, []string{"r2", "r3"}},
		{"institution substring", "", types.SearchFilters{Institution: "東京"}, []string{"r1", "r3"}},
		{"min h-index", "", types.SearchFilters{MinHIndex: 15}, []string{"r1", "r3"}},
		{"has patents", "", types.SearchFilters{HasPatents: true}, []string{"r1", "r3"}},
		{"combined", "", types.SearchFilters{Institution: "東京", MinHIndex: 20, HasPatents: true}, []string{"r1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(directory(), tt.query, tt.filters)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFieldsAndInstitutions(t *testing.T) {
	profiles := directory()
	assert.Equal(t, []string{"情報工学", "医学・薬学", "工学"}, Fields(profiles))
	assert.Equal(t, []string{"東京大学", "京都大学", "東京工業大学"}, Institutions(profiles))
	assert.Empty(t, Fields(nil))
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(directory()[:2], &buf)
	assert.Contains(t, buf.String(), "Yamada Taro")
	assert.Contains(t, buf.String(), "2 researchers")

	buf.Reset()
	FormatTable(nil, &buf)
	assert.Equal(t, "No researchers found.\n", buf.String())
}

func TestFormatTableTruncatesLongNames(t *testing.T) {
	profiles := []types.ResearcherProfile{{
		ID:          "r9",
		Name:        "Bartholomew Alexander Fitzgerald",
		Institution: "国立研究開発法人産業技術総合研究所人工知能研究センター",
	}}

	var buf bytes.Buffer
	FormatTable(profiles, &buf)
	out := buf.String()
	assert.Contains(t, out, "Bartholomew Alexande...")
	assert.Contains(t, out, "国立研究開発法人産業技術総合研究所人工知...")
	assert.NotContains(t, out, "Fitzgerald")
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatJSON(directory()[:1], &buf))
	var decoded []types.ResearcherProfile
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "r1", decoded[0].ID)
}
