package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/service"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/pkg/response"
)

// SchoolHandler serves the single-school lookup tasks.
type SchoolHandler struct {
	schoolSvc service.SchoolService
}

// NewSchoolHandler creates a SchoolHandler.
func NewSchoolHandler(schoolSvc service.SchoolService) *SchoolHandler {
	return &SchoolHandler{schoolSvc: schoolSvc}
}

// ListSchools lists or filters school names.
// GET /api/v1/schools?q=harvard
func (h *SchoolHandler) ListSchools(c *gin.Context) {
	resp, err := h.schoolSvc.ListSchools(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// GetNetPrice returns the net-price-calculator link of a school.
// GET /api/v1/schools/:name/net-price
func (h *SchoolHandler) GetNetPrice(c *gin.Context) {
	resp, err := h.schoolSvc.GetNetPrice(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// GetFinancialAid returns the aid research panel of a school.
// GET /api/v1/schools/:name/financial-aid
func (h *SchoolHandler) GetFinancialAid(c *gin.Context) {
	resp, err := h.schoolSvc.GetFinancialAid(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// GetContact returns the financial-aid contact page of a school.
// GET /api/v1/schools/:name/contact
func (h *SchoolHandler) GetContact(c *gin.Context) {
	resp, err := h.schoolSvc.GetContact(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// GetTransferProfile returns the transfer admissions panel of a school.
// GET /api/v1/schools/:name/transfer
func (h *SchoolHandler) GetTransferProfile(c *gin.Context) {
	resp, err := h.schoolSvc.GetTransferProfile(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}
