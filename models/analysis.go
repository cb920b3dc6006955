package models

// ExtractedFacts represents the structured facts pulled out of one resume.
// Fields that could not be detected carry the sentinel values "Unknown",
// "Not found" and "Not mentioned" rather than being empty.
type ExtractedFacts struct {
	Name       string            `json:"name"`
	Phone      string            `json:"phone"`
	Skills     []string          `json:"skills"`
	Education  []string          `json:"education"`
	Experience string            `json:"experience"`
	Entities   map[string]string `json:"entities"`
}

// MatchResult is the fuzzy fit score between resume and job description.
type MatchResult struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// SkillGapResult compares the job description's required skills against the
// resume's skills.
type SkillGapResult struct {
	RequiredSkills  []string `json:"required_skills"`
	MissingSkills   []string `json:"missing_skills"`
	CoveragePercent int      `json:"coverage_percent"`
}

// AnalysisResult is everything one analysis run produces.
type AnalysisResult struct {
	Resume         ExtractedFacts `json:"resume"`
	Match          MatchResult    `json:"match"`
	SkillGap       SkillGapResult `json:"skill_gap"`
	SuggestedRoles []string       `json:"suggested_roles"`
	ReportFile     string         `json:"report_file"`
	Summary        []string       `json:"summary"`
}
