package services

import (
	"math"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Recommendation labels, bucketed from the fit score by fixed thresholds.
const (
	LabelStrongMatch = "Strong Match"
	LabelNeedsReview = "Needs Review"
	LabelNotSuitable = "Not Suitable"

	strongMatchThreshold = 85
	needsReviewThreshold = 60
)

// MatcherService scores how well a resume fits a job description.
type MatcherService struct{}

func NewMatcherService() *MatcherService {
	return &MatcherService{}
}

// Score computes the order-insensitive token-set similarity of the two
// lowercased texts (0-100) and its three-tier recommendation.
func (m *MatcherService) Score(resumeText, jdText string) (int, string) {
	score := fuzzy.TokenSetRatio(strings.ToLower(resumeText), strings.ToLower(jdText))
	return score, Recommend(score)
}

// Recommend buckets a 0-100 fit score into the fixed recommendation tiers.
func Recommend(score int) string {
	switch {
	case score >= strongMatchThreshold:
		return LabelStrongMatch
	case score >= needsReviewThreshold:
		return LabelNeedsReview
	default:
		return LabelNotSuitable
	}
}

// SkillGap returns the job-description skills missing from the resume,
// preserving the job description's skill order, and the rounded percentage
// of required skills the resume covers. Coverage is 0 when the job
// description requires no known skills.
func (m *MatcherService) SkillGap(resumeSkills, jdSkills []string) ([]string, int) {
	have := make(map[string]bool, len(resumeSkills))
	for _, skill := range resumeSkills {
		have[skill] = true
	}

	missing := []string{}
	for _, skill := range jdSkills {
		if !have[skill] {
			missing = append(missing, skill)
		}
	}

	if len(jdSkills) == 0 {
		return missing, 0
	}
	covered := len(jdSkills) - len(missing)
	coverage := math.Round(float64(covered) / float64(len(jdSkills)) * 100)
	return missing, int(coverage)
}
