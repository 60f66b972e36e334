package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/dto"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/service"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/pkg/response"
)

// SessionHandler manages sessions and their comparison selections.
type SessionHandler struct {
	selectionSvc service.SelectionService
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(selectionSvc service.SelectionService) *SessionHandler {
	return &SessionHandler{selectionSvc: selectionSvc}
}

// CreateSession mints a new session ID.
// POST /api/v1/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	resp, err := h.selectionSvc.NewSession(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Created(c, resp)
}

// GetSelection returns the session's current selection.
// GET /api/v1/sessions/:id/selection
func (h *SessionHandler) GetSelection(c *gin.Context) {
	resp, err := h.selectionSvc.GetSelection(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// AddSchool adds one school to the selection.
// POST /api/v1/sessions/:id/selection
func (h *SessionHandler) AddSchool(c *gin.Context) {
	var req dto.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "school_name is required")
		return
	}

	resp, err := h.selectionSvc.AddSchool(c.Request.Context(), c.Param("id"), req.SchoolName)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// RemoveSchool removes one school from the selection.
// DELETE /api/v1/sessions/:id/selection/:name
func (h *SessionHandler) RemoveSchool(c *gin.Context) {
	resp, err := h.selectionSvc.RemoveSchool(c.Request.Context(), c.Param("id"), c.Param("name"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, resp)
}

// ClearSelection empties the selection.
// DELETE /api/v1/sessions/:id/selection
func (h *SessionHandler) ClearSelection(c *gin.Context) {
	if err := h.selectionSvc.ClearSelection(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.OK(c, nil)
}
