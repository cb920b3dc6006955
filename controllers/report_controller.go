package controllers

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"hranalyzer/services"
	"hranalyzer/utils"
)

type ReportController struct {
	reports *services.ReportService
	logger  *utils.Logger
}

func NewReportController(reports *services.ReportService) *ReportController {
	return &ReportController{
		reports: reports,
		logger:  utils.NewLogger("reports"),
	}
}

// Download streams a previously generated report back to the user with its
// basename as the suggested filename. When reports are mirrored to S3 the
// client is redirected to a presigned URL instead.
func (c *ReportController) Download(ctx *gin.Context) {
	filename := ctx.Param("filename")
	if filename == "" {
		utils.BadRequestError(ctx, "Filename is required", nil)
		return
	}

	path, err := c.reports.FilePath(filename)
	if err != nil {
		utils.NotFoundError(ctx, "Report not found")
		return
	}

	if c.reports.S3Enabled() {
		presignedURL, err := c.reports.PresignedURL(filename)
		if err != nil {
			utils.InternalServerError(ctx, "Failed to generate download URL", err)
			return
		}
		ctx.Redirect(http.StatusTemporaryRedirect, presignedURL)
		return
	}

	c.logger.Info("Report downloaded", gin.H{"report": filename})
	ctx.FileAttachment(path, filepath.Base(path))
}
