package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vendor-desk.backend/internal/interfaces/http/response"
	"vendor-desk.backend/internal/usecases"
)

// ReportHandler handles the derived report endpoints
type ReportHandler struct {
	reportUsecase *usecases.ReportUsecase
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportUsecase *usecases.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

// GetReport returns the directory report as JSON
// GET /api/v1/reports/vendors
func (h *ReportHandler) GetReport(c *gin.Context) {
	report := h.reportUsecase.GenerateReport(c.Request.Context())
	response.Success(c, http.StatusOK, report)
}

// ExportReportCSV downloads the sectioned report CSV
// GET /api/v1/reports/vendors/export
func (h *ReportHandler) ExportReportCSV(c *gin.Context) {
	report := h.reportUsecase.GenerateReport(c.Request.Context())
	doc := h.reportUsecase.EncodeReportCSV(report)
	response.Attachment(c, usecases.ReportFilename, "text/csv", []byte(doc))
}
