package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/dto"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/model"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/repository"
)

// ── school lookup business errors ──

var (
	ErrSchoolNotFound = errors.New("school not found in dataset")
)

// SchoolService answers the single-school lookup tasks: name search, net
// price calculator, aid research panel, contact page, and transfer profile.
// All of them are pure read paths over the loaded dataset; an absent optional
// field is a soft miss rendered as unavailable, never a failure.
type SchoolService interface {
	ListSchools(ctx context.Context, query string) (*dto.SchoolListResponse, error)
	GetNetPrice(ctx context.Context, name string) (*dto.NetPriceResponse, error)
	GetFinancialAid(ctx context.Context, name string) (*dto.FinancialAidResponse, error)
	GetContact(ctx context.Context, name string) (*dto.ContactResponse, error)
	GetTransferProfile(ctx context.Context, name string) (*dto.TransferResponse, error)
}

type schoolService struct {
	repo   *repository.Repository
	loader DatasetEnsurer
	logger *zap.Logger
}

// NewSchoolService creates a SchoolService instance.
func NewSchoolService(repo *repository.Repository, loader DatasetEnsurer, logger *zap.Logger) SchoolService {
	return &schoolService{repo: repo, loader: loader, logger: logger}
}

func (s *schoolService) ListSchools(ctx context.Context, query string) (*dto.SchoolListResponse, error) {
	if err := s.loader.Ensure(ctx); err != nil {
		return nil, err
	}
	names, err := s.repo.School.SearchNames(ctx, query)
	if err != nil {
		s.logger.Error("school name search failed", zap.Error(err))
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return &dto.SchoolListResponse{
		Query:   query,
		Schools: names,
		Total:   len(names),
	}, nil
}

func (s *schoolService) GetNetPrice(ctx context.Context, name string) (*dto.NetPriceResponse, error) {
	school, err := s.getSchool(ctx, name)
	if err != nil {
		return nil, err
	}

	resp := &dto.NetPriceResponse{SchoolName: school.SchoolName}
	if school.NetPriceCalculatorURL != nil && *school.NetPriceCalculatorURL != "" {
		resp.NetPriceCalculatorURL = normalizeLinkURL(*school.NetPriceCalculatorURL)
		resp.Available = true
	}
	return resp, nil
}

// aidPanelMetrics lists the aid research panel content, in display order.
var aidPanelMetrics = []model.MetricEntry{
	{Key: "in_state_tuition", Label: "In-State Tuition", Kind: model.KindCurrency},
	{Key: "out_of_state_tuition", Label: "Out-of-State Tuition", Kind: model.KindCurrency},
	{Key: "median_debt", Label: "Median Debt", Kind: model.KindCurrency},
	{Key: "completion_rate", Label: "Completion Rate", Kind: model.KindPercent},
	{Key: "admission_rate", Label: "Admission Rate", Kind: model.KindPercent},
	{Key: "sat_average", Label: "Average SAT Score", Kind: model.KindInteger},
}

func (s *schoolService) GetFinancialAid(ctx context.Context, name string) (*dto.FinancialAidResponse, error) {
	school, err := s.getSchool(ctx, name)
	if err != nil {
		return nil, err
	}

	metrics := make([]dto.MetricValue, 0, len(aidPanelMetrics))
	for _, m := range aidPanelMetrics {
		raw := school.MetricValue(m.Key)
		metrics = append(metrics, dto.MetricValue{
			Key:       m.Key,
			Label:     m.Label,
			Formatted: FormatValue(raw, m.Kind),
			Value:     raw,
		})
	}

	return &dto.FinancialAidResponse{
		SchoolName: school.SchoolName,
		Metrics:    metrics,
	}, nil
}

func (s *schoolService) GetContact(ctx context.Context, name string) (*dto.ContactResponse, error) {
	school, err := s.getSchool(ctx, name)
	if err != nil {
		return nil, err
	}

	resp := &dto.ContactResponse{SchoolName: school.SchoolName}
	if school.SchoolURL != nil && *school.SchoolURL != "" {
		resp.SchoolURL = normalizeLinkURL(*school.SchoolURL)
		resp.Available = true
	}
	return resp, nil
}

func (s *schoolService) GetTransferProfile(ctx context.Context, name string) (*dto.TransferResponse, error) {
	school, err := s.getSchool(ctx, name)
	if err != nil {
		return nil, err
	}

	partners := "No data"
	if school.ArticulationPartners != nil && *school.ArticulationPartners != "" {
		partners = *school.ArticulationPartners
	}

	return &dto.TransferResponse{
		SchoolName: school.SchoolName,
		AdmitRate: dto.MetricValue{
			Key:       "transfer_admit_rate",
			Label:     "Transfer Admit Rate",
			Formatted: FormatValue(school.TransferAdmitRate, model.KindPercent),
			Value:     school.TransferAdmitRate,
		},
		CreditAcceptance: dto.MetricValue{
			Key:       "transfer_credit_acceptance",
			Label:     "Avg. Credits Accepted",
			Formatted: FormatValue(school.TransferCreditAcceptance, model.KindInteger),
			Value:     school.TransferCreditAcceptance,
		},
		ArticulationPartners: partners,
	}, nil
}

func (s *schoolService) getSchool(ctx context.Context, name string) (*model.School, error) {
	return lookupSchool(ctx, s.loader, s.repo, name)
}

// lookupSchool resolves a school by exact name, shared by every service that
// starts from one selected school.
func lookupSchool(ctx context.Context, loader DatasetEnsurer, repo *repository.Repository, name string) (*model.School, error) {
	if err := loader.Ensure(ctx); err != nil {
		return nil, err
	}
	school, err := repo.School.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchoolNotFound
		}
		return nil, err
	}
	return school, nil
}
