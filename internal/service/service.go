package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/config"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/repository"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/session"
)

// DatasetEnsurer refreshes the backing dataset when it has gone stale.
// Satisfied by *dataset.Loader.
type DatasetEnsurer interface {
	Ensure(ctx context.Context) error
}

// Service aggregates all services.
type Service struct {
	School    SchoolService
	Selection SelectionService
	Compare   CompareService
	Export    ExportService
	Review    ReviewService
	Visit     VisitService
}

// NewService wires the service aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	loader DatasetEnsurer,
	selections session.Store,
	logger *zap.Logger,
) *Service {
	school := NewSchoolService(repo, loader, logger)
	compare := NewCompareService(repo, loader, logger)

	return &Service{
		School:    school,
		Selection: NewSelectionService(repo, loader, selections, logger),
		Compare:   compare,
		Export:    NewExportService(compare, logger),
		Review:    NewReviewService(&cfg.Fetch, repo, loader, logger),
		Visit:     NewVisitService(&cfg.Fetch, repo, loader, logger),
	}
}
