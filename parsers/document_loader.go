package parsers

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// DocumentLoader turns an uploaded resume into plain text. The extraction
// routine is selected from the filename suffix only; the content is never
// sniffed.
type DocumentLoader struct{}

func NewDocumentLoader() *DocumentLoader {
	return &DocumentLoader{}
}

// ExtractText extracts the full text of a .pdf or .docx resume. Errors from
// the underlying document libraries on corrupt input propagate untouched.
func (l *DocumentLoader) ExtractText(filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".pdf":
		return l.extractPDF(data)
	case ".docx":
		return l.extractDocx(data)
	default:
		return "", fmt.Errorf("unsupported file format: %s (only .pdf and .docx are allowed)", ext)
	}
}

// extractPDF concatenates the plain text of every page in page order.
func (l *DocumentLoader) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to extract pdf page %d: %w", i, err)
		}
		text.WriteString(pageText)
		text.WriteString("\n")
	}
	return text.String(), nil
}

var docxTagRegex = regexp.MustCompile(`<[^>]+>`)

// extractDocx joins paragraph text with newline separators, preserving
// paragraph order.
func (l *DocumentLoader) extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	// The editable content is the raw document XML; paragraph close tags
	// become newlines before the remaining markup is stripped.
	content := doc.Editable().GetContent()
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = docxTagRegex.ReplaceAllString(content, "")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
