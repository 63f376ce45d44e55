// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package matching

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/seedmatch/pkg/types"
)

// stopWords are Japanese function words dropped from keyword sets.
var stopWords = newTokenSet([]string{
	"する", "これ", "その", "また", "および", "ため", "よる", "による", "おける",
})

// isSeparator reports whether r splits tokens: any Unicode space, the ASCII
// comma, or the Japanese comma and full stops.
func isSeparator(r rune) bool {
	switch r {
	case ',', '、', '。', '．':
		return true
	}
	return unicode.IsSpace(r)
}

// tokenize lower-cases text and splits it on separators. Empty tokens never
// appear in the result.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), isSeparator)
}

// extractKeywords returns the keyword tokens of a proposal in extraction
// order: title, summary, objective, then expected outcome, with one-rune
// tokens and stop words removed. Duplicates are kept.
func extractKeywords(p types.Proposal) []string {
	text := strings.Join([]string{p.Title, p.Summary, p.Objective, p.ExpectedOutcome}, " ")
	tokens := tokenize(text)

	keywords := tokens[:0]
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= 1 || stopWords.has(tok) {
			continue
		}
		keywords = append(keywords, tok)
	}
	return keywords
}

// tokenSet is an unordered set of tokens.
type tokenSet map[string]struct{}

func newTokenSet(tokens []string) tokenSet {
	s := make(tokenSet, len(tokens))
	for _, tok := range tokens {
		s[tok] = struct{}{}
	}
	return s
}

func (s tokenSet) has(tok string) bool {
	_, ok := s[tok]
	return ok
}

// jaccard returns |a ∩ b| / |a ∪ b|, or 0 when both sets are empty.
func jaccard(a, b tokenSet) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if b.has(tok) {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// textSimilarity is the Jaccard similarity of two tokenized texts without
// stop-word removal.
func textSimilarity(a, b string) float64 {
	return jaccard(newTokenSet(tokenize(a)), newTokenSet(tokenize(b)))
}

// commonKeywords returns the distinct keywords of a that also occur in b, in
// a's extraction order.
func commonKeywords(a, b []string) []string {
	other := newTokenSet(b)
	seen := make(tokenSet)
	var common []string
	for _, kw := range a {
		if !other.has(kw) || seen.has(kw) {
			continue
		}
		seen[kw] = struct{}{}
		common = append(common, kw)
	}
	return common
}
