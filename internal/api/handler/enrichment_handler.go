package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/service"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/pkg/response"
)

// EnrichmentHandler serves the best-effort third-party content: student
// reviews and campus visit events.
type EnrichmentHandler struct {
	reviewSvc service.ReviewService
	visitSvc  service.VisitService
}

// NewEnrichmentHandler creates an EnrichmentHandler.
func NewEnrichmentHandler(reviewSvc service.ReviewService, visitSvc service.VisitService) *EnrichmentHandler {
	return &EnrichmentHandler{reviewSvc: reviewSvc, visitSvc: visitSvc}
}

// GetReviews returns aggregated student reviews for a school. An empty list
// means no data could be fetched; that is informational, not an error.
// GET /api/v1/schools/:name/reviews
func (h *EnrichmentHandler) GetReviews(c *gin.Context) {
	resp, err := h.reviewSvc.GetReviews(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// GetVisitEvents returns upcoming campus tour events for a school.
// GET /api/v1/schools/:name/visit-events
func (h *EnrichmentHandler) GetVisitEvents(c *gin.Context) {
	resp, err := h.visitSvc.GetEvents(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// GetVisitCalendar downloads the tour events as an iCalendar file.
// GET /api/v1/schools/:name/visit-events/calendar
func (h *EnrichmentHandler) GetVisitCalendar(c *gin.Context) {
	buf, filename, err := h.visitSvc.Calendar(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}
