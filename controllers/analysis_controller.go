package controllers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"hranalyzer/models"
	"hranalyzer/parsers"
	"hranalyzer/services"
	"hranalyzer/utils"
)

// TextExtractor extracts plain text from an uploaded resume document.
type TextExtractor interface {
	ExtractText(filename string, data []byte) (string, error)
}

type AnalysisController struct {
	loader    TextExtractor
	extractor *parsers.FactExtractor
	matcher   *services.MatcherService
	roles     *services.RoleService
	reports   *services.ReportService
	logger    *utils.Logger
}

func NewAnalysisController(
	loader TextExtractor,
	extractor *parsers.FactExtractor,
	matcher *services.MatcherService,
	roles *services.RoleService,
	reports *services.ReportService,
) *AnalysisController {
	return &AnalysisController{
		loader:    loader,
		extractor: extractor,
		matcher:   matcher,
		roles:     roles,
		reports:   reports,
		logger:    utils.NewLogger("analysis"),
	}
}

// Analyze runs the full pipeline for one multipart request: extract text
// from the uploaded resume, pull out facts, score against the pasted job
// description, suggest roles and render the downloadable report. Each run
// is self-contained; nothing survives it except the report file.
func (c *AnalysisController) Analyze(ctx *gin.Context) {
	jobDescription := strings.TrimSpace(ctx.PostForm("job_description"))
	if jobDescription == "" {
		utils.BadRequestError(ctx, "Job description is required", nil)
		return
	}

	file, header, err := ctx.Request.FormFile("resume")
	if err != nil {
		utils.BadRequestError(ctx, "Resume file is required", err)
		return
	}
	defer file.Close()

	format := ctx.DefaultPostForm("format", services.FormatPDF)
	if format != services.FormatPDF && format != services.FormatDOCX {
		utils.BadRequestError(ctx, "Report format must be pdf or docx", nil)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to read uploaded file", err)
		return
	}

	resumeText, err := c.loader.ExtractText(header.Filename, data)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to extract resume text", err)
		return
	}

	facts, err := c.extractor.Extract(resumeText)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to extract resume facts", err)
		return
	}

	jdSkills := c.extractor.ExtractSkills(jobDescription)
	missing, coverage := c.matcher.SkillGap(facts.Skills, jdSkills)
	score, recommendation := c.matcher.Score(resumeText, jobDescription)
	suggestedRoles := c.roles.Suggest(facts.Skills)

	reportPath, err := c.reports.Generate(services.Report{
		Name:           facts.Name,
		Phone:          facts.Phone,
		Skills:         facts.Skills,
		Education:      facts.Education,
		Experience:     facts.Experience,
		Score:          score,
		Recommendation: recommendation,
		MissingSkills:  missing,
	}, format)
	if err != nil {
		utils.InternalServerError(ctx, "Failed to generate report", err)
		return
	}

	result := models.AnalysisResult{
		Resume: facts,
		Match: models.MatchResult{
			Score: score,
			Label: recommendation,
		},
		SkillGap: models.SkillGapResult{
			RequiredSkills:  jdSkills,
			MissingSkills:   missing,
			CoveragePercent: coverage,
		},
		SuggestedRoles: suggestedRoles,
		ReportFile:     filepath.Base(reportPath),
	}
	result.Summary = buildSummary(result)

	c.logger.Info("Analysis complete", gin.H{
		"candidate": facts.Name,
		"score":     score,
		"coverage":  coverage,
		"report":    result.ReportFile,
	})
	utils.SuccessResponse(ctx, http.StatusOK, "Analysis complete", result)
}

var titleCaser = cases.Title(language.English)

// buildSummary renders the on-screen summary lines shown next to the
// downloadable report: capitalized skills, uppercased degrees, then the
// matching figures.
func buildSummary(result models.AnalysisResult) []string {
	lines := []string{"Name: " + result.Resume.Name}

	for _, skill := range result.Resume.Skills {
		lines = append(lines, "Skill: "+titleCaser.String(skill))
	}
	for _, edu := range result.Resume.Education {
		lines = append(lines, "Education: "+strings.ToUpper(edu))
	}
	lines = append(lines, "Experience: "+result.Resume.Experience)

	for _, category := range []string{parsers.LabelOrg, parsers.LabelDate, parsers.LabelPerson} {
		if entity, ok := result.Resume.Entities[category]; ok {
			lines = append(lines, fmt.Sprintf("Entity %s: %s", category, entity))
		}
	}

	if len(result.SkillGap.MissingSkills) == 0 {
		lines = append(lines, "No missing skills! You're a perfect fit.")
	} else {
		lines = append(lines, "Missing Skills: "+strings.Join(result.SkillGap.MissingSkills, ", "))
	}
	lines = append(lines,
		fmt.Sprintf("Skill Match: %d%%", result.SkillGap.CoveragePercent),
		fmt.Sprintf("Fit Score: %d%% - %s", result.Match.Score, result.Match.Label),
	)
	return lines
}
