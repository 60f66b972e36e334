package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/dataset"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/service"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/session"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/pkg/response"
)

// Handler aggregates all handlers.
type Handler struct {
	School  *SchoolHandler
	Catalog *CatalogHandler
	Session *SessionHandler
	Compare *CompareHandler
	Export  *ExportHandler
	Enrich  *EnrichmentHandler
}

// NewHandler builds the handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		School:  NewSchoolHandler(svc.School),
		Catalog: NewCatalogHandler(),
		Session: NewSessionHandler(svc.Selection),
		Compare: NewCompareHandler(svc.Compare),
		Export:  NewExportHandler(svc.Export),
		Enrich:  NewEnrichmentHandler(svc.Review, svc.Visit),
	}
}

// respondServiceError maps domain errors shared across handlers; anything
// unmatched is a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSchoolNotFound):
		response.NotFound(c, 20001, "school not found")
	case errors.Is(err, dataset.ErrDatasetUnavailable):
		response.Error(c, http.StatusServiceUnavailable, 20002, "college dataset is unavailable")
	case errors.Is(err, session.ErrSelectionLimitExceeded),
		errors.Is(err, service.ErrTooManySchools):
		response.BadRequest(c, 30001, "no more than 5 schools can be compared")
	case errors.Is(err, service.ErrUnknownCategory):
		response.BadRequest(c, 30002, "unknown metric category")
	case errors.Is(err, service.ErrUnknownMetric):
		response.BadRequest(c, 30003, "metric does not belong to the chosen category")
	case errors.Is(err, service.ErrExportBadFormat):
		response.BadRequest(c, 40001, "export format must be csv or xlsx")
	case errors.Is(err, service.ErrExportGenerateFail):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
