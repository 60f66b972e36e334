package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/dto"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/service"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/pkg/response"
)

// CompareHandler serves the school comparison task.
type CompareHandler struct {
	compareSvc service.CompareService
}

// NewCompareHandler creates a CompareHandler.
func NewCompareHandler(compareSvc service.CompareService) *CompareHandler {
	return &CompareHandler{compareSvc: compareSvc}
}

// Compare assembles the side-by-side comparison table and chart data.
// POST /api/v1/compare
func (h *CompareHandler) Compare(c *gin.Context) {
	var req dto.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "school_names, category and metric_keys are required")
		return
	}

	resp, err := h.compareSvc.Compare(c.Request.Context(), req.SchoolNames, req.Category, req.MetricKeys)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// Similar samples same-state schools the user has not selected.
// POST /api/v1/compare/similar
func (h *CompareHandler) Similar(c *gin.Context) {
	var req dto.SimilarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "school_names is required")
		return
	}

	schools, err := h.compareSvc.SimilarSchools(c.Request.Context(), req.SchoolNames, req.Count)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"schools": schools})
}
