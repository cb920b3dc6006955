package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hranalyzer/services"
)

func reportRouter(t *testing.T) (*gin.Engine, *services.ReportService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reports := services.NewReportService(t.TempDir(), nil)
	controller := NewReportController(reports)

	router := gin.New()
	router.GET("/api/reports/:filename", controller.Download)
	return router, reports
}

func TestDownload_StreamsReport(t *testing.T) {
	router, reports := reportRouter(t)

	_, err := reports.Generate(services.Report{
		Name:           "Ayesha Khan",
		Phone:          "Not found",
		Experience:     "Not mentioned",
		Recommendation: "Needs Review",
	}, services.FormatPDF)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/reports/Ayesha%20Khan_report.pdf", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Ayesha Khan_report.pdf")
	assert.NotZero(t, w.Body.Len())
}

func TestDownload_NotFound(t *testing.T) {
	router, _ := reportRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/reports/nobody_report.pdf", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownload_RejectsTraversal(t *testing.T) {
	router, _ := reportRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/reports/..%2Fsecrets.txt", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
