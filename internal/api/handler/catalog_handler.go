package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/dto"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/model"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/pkg/response"
)

// CatalogHandler serves static process-lifetime content: the metric catalog
// and the scholarship resource page.
type CatalogHandler struct{}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// GetMetricCatalog returns the metric categories for the comparison picker.
// GET /api/v1/metrics
func (h *CatalogHandler) GetMetricCatalog(c *gin.Context) {
	response.OK(c, gin.H{
		"categories":  model.MetricCatalog,
		"max_schools": model.MaxCompareSchools,
	})
}

// scholarshipResources is the static scholarship page content.
var scholarshipResources = dto.ScholarshipResponse{
	AidTypes: []dto.AidType{
		{Name: "Federal", Description: "Grants, Work-Study, Loans"},
		{Name: "State", Description: "Local programs"},
		{Name: "Institutional", Description: "Merit & Need-based"},
		{Name: "Private", Description: "Organization-sponsored"},
	},
	FAFSA: []string{
		"Opens Oct 1; federal deadline Jun 30",
		"Apply online: https://studentaid.gov",
	},
	SearchTools: []dto.ResourceLink{
		{Name: "FastWeb", URL: "https://www.fastweb.com"},
		{Name: "Scholarships.com", URL: "https://www.scholarships.com"},
		{Name: "College Board", URL: "https://bigfuture.collegeboard.org"},
		{Name: "Niche", URL: "https://www.niche.com/colleges/scholarships/"},
	},
	Tips: []string{
		"Apply early; some aid is first-come",
		"Check school-specific deadlines",
		"Keep copies of all forms",
	},
}

// GetScholarships returns the scholarship resource listing.
// GET /api/v1/scholarships
func (h *CatalogHandler) GetScholarships(c *gin.Context) {
	response.OK(c, scholarshipResources)
}
