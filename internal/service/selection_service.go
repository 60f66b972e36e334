package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/dto"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/model"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/repository"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/session"
)

// SelectionService manages the session-scoped comparison selection. The
// selection is an ordered set capped at five schools; adding a school that is
// already selected is a no-op, a sixth school is rejected at this boundary
// and never reaches the assembler.
type SelectionService interface {
	NewSession(ctx context.Context) (*dto.SessionResponse, error)
	GetSelection(ctx context.Context, sessionID string) (*dto.SelectionResponse, error)
	AddSchool(ctx context.Context, sessionID, name string) (*dto.SelectionResponse, error)
	RemoveSchool(ctx context.Context, sessionID, name string) (*dto.SelectionResponse, error)
	ClearSelection(ctx context.Context, sessionID string) error
}

type selectionService struct {
	repo       *repository.Repository
	loader     DatasetEnsurer
	selections session.Store
	logger     *zap.Logger
}

// NewSelectionService creates a SelectionService instance.
func NewSelectionService(repo *repository.Repository, loader DatasetEnsurer, selections session.Store, logger *zap.Logger) SelectionService {
	return &selectionService{repo: repo, loader: loader, selections: selections, logger: logger}
}

func (s *selectionService) NewSession(_ context.Context) (*dto.SessionResponse, error) {
	return &dto.SessionResponse{SessionID: uuid.New().String()}, nil
}

func (s *selectionService) GetSelection(ctx context.Context, sessionID string) (*dto.SelectionResponse, error) {
	names, err := s.selections.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return selectionResponse(sessionID, names), nil
}

func (s *selectionService) AddSchool(ctx context.Context, sessionID, name string) (*dto.SelectionResponse, error) {
	// Only schools present in the dataset are selectable.
	if err := s.loader.Ensure(ctx); err != nil {
		return nil, err
	}
	if _, err := s.repo.School.GetByName(ctx, name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchoolNotFound
		}
		return nil, err
	}

	names, err := s.selections.Add(ctx, sessionID, name)
	if err != nil {
		return nil, err
	}
	return selectionResponse(sessionID, names), nil
}

func (s *selectionService) RemoveSchool(ctx context.Context, sessionID, name string) (*dto.SelectionResponse, error) {
	names, err := s.selections.Remove(ctx, sessionID, name)
	if err != nil {
		return nil, err
	}
	return selectionResponse(sessionID, names), nil
}

func (s *selectionService) ClearSelection(ctx context.Context, sessionID string) error {
	return s.selections.Clear(ctx, sessionID)
}

func selectionResponse(sessionID string, names []string) *dto.SelectionResponse {
	if names == nil {
		names = []string{}
	}
	return &dto.SelectionResponse{
		SessionID: sessionID,
		Schools:   names,
		Remaining: model.MaxCompareSchools - len(names),
	}
}
