package parsers

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// Entity categories kept by the extractor.
const (
	LabelPerson = "PERSON"
	LabelOrg    = "ORG"
	LabelDate   = "DATE"
)

// Entity is a labeled text span.
type Entity struct {
	Label string
	Text  string
}

// EntityRecognizer finds labeled spans in free text. Implementations must
// return entities in document order.
type EntityRecognizer interface {
	Recognize(text string) ([]Entity, error)
}

// ProseRecognizer labels entities with the pretrained prose model. The model
// only emits PERSON and GPE labels, so DATE and ORG spans are supplemented
// with pattern recognizers and merged into the same document-ordered stream.
type ProseRecognizer struct {
	dateRegex *regexp.Regexp
	orgRegex  *regexp.Regexp
}

func NewProseRecognizer() *ProseRecognizer {
	return &ProseRecognizer{
		dateRegex: regexp.MustCompile(`(?i)(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*[\s,]+\d{4}|\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\b(?:19|20)\d{2}\b`),
		orgRegex:  regexp.MustCompile(`[A-Z][A-Za-z&.]*(?:\s+[A-Z][A-Za-z&.]*)*\s+(?:Inc|Ltd|LLC|Corp|Corporation|Company|Technologies|Solutions|Systems|University|College|Institute)\.?`),
	}
}

type positionedEntity struct {
	offset int
	entity Entity
}

func (r *ProseRecognizer) Recognize(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, fmt.Errorf("entity recognition failed: %w", err)
	}

	var found []positionedEntity
	searchFrom := 0
	for _, ent := range doc.Entities() {
		if ent.Label != LabelPerson {
			continue
		}
		offset := strings.Index(text[searchFrom:], ent.Text)
		if offset < 0 {
			continue
		}
		offset += searchFrom
		searchFrom = offset + len(ent.Text)
		found = append(found, positionedEntity{offset, Entity{LabelPerson, ent.Text}})
	}

	for _, loc := range r.dateRegex.FindAllStringIndex(text, -1) {
		found = append(found, positionedEntity{loc[0], Entity{LabelDate, text[loc[0]:loc[1]]}})
	}
	for _, loc := range r.orgRegex.FindAllStringIndex(text, -1) {
		found = append(found, positionedEntity{loc[0], Entity{LabelOrg, text[loc[0]:loc[1]]}})
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].offset < found[j].offset
	})

	entities := make([]Entity, 0, len(found))
	for _, pe := range found {
		entities = append(entities, pe.entity)
	}
	return entities, nil
}
