package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommend_Thresholds(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, LabelStrongMatch},
		{85, LabelStrongMatch},
		{84, LabelNeedsReview},
		{60, LabelNeedsReview},
		{59, LabelNotSuitable},
		{0, LabelNotSuitable},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Recommend(test.score), "score %d", test.score)
	}
}

func TestScore_IdenticalTexts(t *testing.T) {
	matcher := NewMatcherService()

	score, label := matcher.Score("Python SQL developer", "python sql developer")
	assert.Equal(t, 100, score)
	assert.Equal(t, LabelStrongMatch, label)
}

func TestScore_WhitespaceInsensitive(t *testing.T) {
	matcher := NewMatcherService()

	a, _ := matcher.Score("python sql excel", "looking for python and sql")
	b, _ := matcher.Score("python   sql \n excel", "looking for python and sql")
	assert.Equal(t, a, b)
}

func TestScore_Range(t *testing.T) {
	matcher := NewMatcherService()

	texts := []struct{ resume, jd string }{
		{"completely unrelated plumbing text", "senior kubernetes engineer"},
		{"", "anything"},
		{"python", "python"},
	}
	for _, tt := range texts {
		score, _ := matcher.Score(tt.resume, tt.jd)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestSkillGap(t *testing.T) {
	matcher := NewMatcherService()

	// The JD needs python, sql and excel; the resume covers two of three.
	missing, coverage := matcher.SkillGap(
		[]string{"python", "sql"},
		[]string{"python", "sql", "excel"},
	)
	assert.Equal(t, []string{"excel"}, missing)
	assert.Equal(t, 67, coverage)
}

func TestSkillGap_FullCoverage(t *testing.T) {
	matcher := NewMatcherService()

	missing, coverage := matcher.SkillGap(
		[]string{"python", "sql", "excel", "ai"},
		[]string{"python", "sql"},
	)
	assert.Empty(t, missing)
	assert.Equal(t, 100, coverage)
}

func TestSkillGap_EmptyJD(t *testing.T) {
	matcher := NewMatcherService()

	missing, coverage := matcher.SkillGap([]string{"python"}, nil)
	assert.Empty(t, missing)
	assert.Equal(t, 0, coverage)
}

func TestSkillGap_MissingIsSubsetOfRequired(t *testing.T) {
	matcher := NewMatcherService()

	jdSkills := []string{"python", "power bi", "teamwork"}
	missing, _ := matcher.SkillGap([]string{"sql"}, jdSkills)

	required := make(map[string]bool, len(jdSkills))
	for _, s := range jdSkills {
		required[s] = true
	}
	for _, s := range missing {
		assert.True(t, required[s], "missing skill %q not in JD skills", s)
	}
}
