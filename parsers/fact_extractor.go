package parsers

import (
	"regexp"
	"strings"

	"hranalyzer/models"
)

// Sentinels for facts that could not be detected. Absence is a normal,
// expected outcome, not an error.
const (
	NameUnknown            = "Unknown"
	PhoneNotFound          = "Not found"
	ExperienceNotMentioned = "Not mentioned"
)

// SkillVocabulary is the fixed keyword list both resumes and job
// descriptions are matched against. ExtractSkills returns matches in this
// order.
var SkillVocabulary = []string{
	"python", "sql", "excel", "power bi", "machine learning",
	"communication", "teamwork", "deep learning", "ai",
}

// EducationKeywords are the degree tokens searched for as lowercase
// substrings.
var EducationKeywords = []string{"bachelor", "master", "phd", "bs", "ms", "bsc", "msc"}

// FactExtractor pulls structured facts out of resume text.
type FactExtractor struct {
	experienceRegex *regexp.Regexp
	phoneRegex      *regexp.Regexp
	recognizer      EntityRecognizer
}

// NewFactExtractor creates a fact extractor with compiled regexes. The
// entity recognizer supplies the name and entity facts and is injectable
// for tests.
func NewFactExtractor(recognizer EntityRecognizer) *FactExtractor {
	return &FactExtractor{
		experienceRegex: regexp.MustCompile(`(?i)\d+\+?\s+years?`),
		phoneRegex:      regexp.MustCompile(`(?:(?:\+92|0092|0)\s?\d{3}[-\s]?\d{7})|(?:\d{11})|(?:\d{4}[-\s]?\d{7})`),
		recognizer:      recognizer,
	}
}

// Extract runs every extractor over the text and assembles the facts. The
// entity pass runs once and feeds both the name and the entity map.
func (e *FactExtractor) Extract(text string) (models.ExtractedFacts, error) {
	entities, err := e.recognizer.Recognize(text)
	if err != nil {
		return models.ExtractedFacts{}, err
	}

	return models.ExtractedFacts{
		Name:       NameFromEntities(entities),
		Phone:      e.ExtractPhone(text),
		Skills:     e.ExtractSkills(text),
		Education:  e.ExtractEducation(text),
		Experience: e.ExtractExperience(text),
		Entities:   EntitiesByCategory(entities),
	}, nil
}

// ExtractSkills returns the vocabulary terms present in the text as
// case-insensitive substrings, in vocabulary order.
func (e *FactExtractor) ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	skills := []string{}
	for _, skill := range SkillVocabulary {
		if strings.Contains(lower, skill) {
			skills = append(skills, skill)
		}
	}
	return skills
}

// ExtractEducation returns the degree keywords present in the text as
// case-insensitive substrings. Short tokens like "bs" match inside larger
// words; that keyword-presence semantic is the contract, not a bug.
func (e *FactExtractor) ExtractEducation(text string) []string {
	lower := strings.ToLower(text)
	education := []string{}
	for _, keyword := range EducationKeywords {
		if strings.Contains(lower, keyword) {
			education = append(education, keyword)
		}
	}
	return education
}

// ExtractExperience returns the first "<n> years" style phrase verbatim,
// or "Not mentioned".
func (e *FactExtractor) ExtractExperience(text string) string {
	if match := e.experienceRegex.FindString(text); match != "" {
		return match
	}
	return ExperienceNotMentioned
}

// ExtractPhone returns the first phone-shaped substring (country-code
// prefixed, 11 bare digits, or 4+7 digit grouping), or "Not found".
func (e *FactExtractor) ExtractPhone(text string) string {
	if match := e.phoneRegex.FindString(text); match != "" {
		return match
	}
	return PhoneNotFound
}

// ExtractName returns the first PERSON entity in document order, or
// "Unknown".
func (e *FactExtractor) ExtractName(text string) (string, error) {
	entities, err := e.recognizer.Recognize(text)
	if err != nil {
		return "", err
	}
	return NameFromEntities(entities), nil
}

// NameFromEntities picks the first PERSON span of a document-ordered entity
// list.
func NameFromEntities(entities []Entity) string {
	for _, ent := range entities {
		if ent.Label == LabelPerson {
			return ent.Text
		}
	}
	return NameUnknown
}

// EntitiesByCategory maps entity category to entity text for the ORG, DATE
// and PERSON categories. When a category occurs more than once the last
// occurrence wins, so only one entity per category survives.
func EntitiesByCategory(entities []Entity) map[string]string {
	byCategory := make(map[string]string)
	for _, ent := range entities {
		switch ent.Label {
		case LabelOrg, LabelDate, LabelPerson:
			byCategory[ent.Label] = ent.Text
		}
	}
	return byCategory
}
