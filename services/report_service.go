package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"baliance.com/gooxml/document"
	"github.com/jung-kurt/gofpdf"

	"hranalyzer/utils"
)

// Report formats.
const (
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

// Report carries every value rendered into the downloadable artifact.
type Report struct {
	Name           string
	Phone          string
	Skills         []string
	Education      []string
	Experience     string
	Score          int
	Recommendation string
	MissingSkills  []string
}

// ReportService renders single-page candidate reports into the reports
// directory and optionally mirrors them to S3.
type ReportService struct {
	dir string
	s3  *S3Service // nil when S3 is not configured
}

func NewReportService(dir string, s3 *S3Service) *ReportService {
	return &ReportService{dir: dir, s3: s3}
}

// Generate renders the report in the requested format and returns the path
// of the written file. The reports directory is created if absent, and a
// re-run for the same candidate overwrites the previous artifact.
func (s *ReportService) Generate(report Report, format string) (string, error) {
	if err := os.MkdirAll(s.dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %v", err)
	}

	basename := utils.SanitizeFileName(report.Name) + "_report." + format
	path := filepath.Join(s.dir, basename)

	var err error
	switch format {
	case FormatPDF:
		err = s.renderPDF(report, path)
	case FormatDOCX:
		err = s.renderDOCX(report, path)
	default:
		return "", fmt.Errorf("unsupported report format: %s", format)
	}
	if err != nil {
		return "", err
	}

	if s.s3 != nil {
		if _, err := s.s3.UploadFile(path, "reports/"+basename); err != nil {
			return "", fmt.Errorf("failed to mirror report to S3: %v", err)
		}
	}
	return path, nil
}

// rows returns the field lines in their fixed report order. The
// recommendation is stripped to printable ASCII because the page writer
// cannot render arbitrary characters.
func (s *ReportService) rows(report Report) []string {
	return []string{
		"Skills: " + strings.Join(report.Skills, ", "),
		"Phone: " + report.Phone,
		"Education: " + strings.Join(report.Education, ", "),
		"Experience: " + report.Experience,
		"Missing Skills: " + strings.Join(report.MissingSkills, ", "),
		fmt.Sprintf("Match Score: %d%%", report.Score),
		"Recommendation: " + utils.StripNonASCII(report.Recommendation),
	}
}

func (s *ReportService) renderPDF(report Report, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(200, 10, "Resume Report for "+utils.StripNonASCII(report.Name), "", 1, "C", false, 0, "")
	pdf.Ln(10)
	for _, row := range s.rows(report) {
		pdf.CellFormat(200, 10, row, "", 1, "L", false, 0, "")
	}
	return pdf.OutputFileAndClose(path)
}

func (s *ReportService) renderDOCX(report Report, path string) error {
	doc := document.New()
	doc.AddParagraph().AddRun().AddText("Resume Report for " + report.Name)
	for _, row := range s.rows(report) {
		doc.AddParagraph().AddRun().AddText(row)
	}
	return doc.SaveToFile(path)
}

// FilePath resolves a previously generated report basename to its on-disk
// path, rejecting anything that would escape the reports directory.
func (s *ReportService) FilePath(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid report filename")
	}
	path := filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

// S3Enabled reports whether generated reports are mirrored to S3.
func (s *ReportService) S3Enabled() bool {
	return s.s3 != nil
}

// PresignedURL returns a temporary download URL for a mirrored report.
func (s *ReportService) PresignedURL(filename string) (string, error) {
	if s.s3 == nil {
		return "", fmt.Errorf("S3 is not configured")
	}
	return s.s3.GeneratePresignedURL("reports/" + filename)
}
