// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package matching

import (
	"fmt"
	"strings"

	"github.com/pdiddy/seedmatch/pkg/types"
)

const (
	// similarityThreshold is the text Jaccard above which approach and
	// outcome overlap is reported as a reason.
	similarityThreshold = 0.3

	// maxReasonKeywords caps the keywords listed in the common-keyword reason.
	maxReasonKeywords = 3
)

const (
	reasonSameField       = "同じ研究分野で活動しています"
	reasonRelatedField    = "関連する研究分野で活動しています"
	reasonKeywordsPrefix  = "共通のキーワード: "
	reasonSimilarApproach = "研究アプローチに類似点があります"
	reasonRelatedOutcomes = "研究成果に関連性があります"

	themeIntegratedFormat = "%sと%sの統合研究"
	themeMethodology      = "相互の研究手法を組み合わせた新しいアプローチの開発"
	themeCrossDiscipline  = "分野横断的な新規研究領域の開拓"
	themeSynergy          = "両研究の知見を活かした新規性の高い研究展開"
)

// matchReasons explains why b may suit a. The list is built in evaluation
// order and is never padded; it is independent of the numeric score.
func matchReasons(a, b types.Proposal) []string {
	reasons := []string{}

	switch {
	case a.Field == b.Field:
		reasons = append(reasons, reasonSameField)
	case fieldsRelated(a.Field, b.Field):
		reasons = append(reasons, reasonRelatedField)
	}

	common := commonKeywords(extractKeywords(a), extractKeywords(b))
	if len(common) > 0 {
		if len(common) > maxReasonKeywords {
			common = common[:maxReasonKeywords]
		}
		reasons = append(reasons, reasonKeywordsPrefix+strings.Join(common, ", "))
	}

	if textSimilarity(a.Approach, b.Approach) > similarityThreshold {
		reasons = append(reasons, reasonSimilarApproach)
	}

	if textSimilarity(a.ExpectedOutcome, b.ExpectedOutcome) > similarityThreshold {
		reasons = append(reasons, reasonRelatedOutcomes)
	}

	return reasons
}

// collaborationThemes suggests two to four joint research themes for a and b.
func collaborationThemes(a, b types.Proposal) []string {
	themes := []string{fmt.Sprintf(themeIntegratedFormat, a.Title, b.Title)}

	if a.Approach != b.Approach {
		themes = append(themes, themeMethodology)
	}

	if a.Field != b.Field && fieldsRelated(a.Field, b.Field) {
		themes = append(themes, themeCrossDiscipline)
	}

	return append(themes, themeSynergy)
}
