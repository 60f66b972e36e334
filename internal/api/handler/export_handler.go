package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/dto"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/service"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/pkg/response"
)

// ExportHandler serves comparison downloads.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Export downloads the assembled comparison as CSV or XLSX.
// POST /api/v1/compare/export?format=csv|xlsx
func (h *ExportHandler) Export(c *gin.Context) {
	var req dto.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "school_names, category and metric_keys are required")
		return
	}

	format := c.DefaultQuery("format", service.FormatCSV)

	buf, filename, contentType, err := h.exportSvc.ExportComparison(
		c.Request.Context(), req.SchoolNames, req.Category, req.MetricKeys, format)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
