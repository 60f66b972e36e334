package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/dto"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/model"
	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/repository"
)

// ── comparison business errors ──

var (
	ErrTooManySchools  = errors.New("comparison is limited to 5 schools")
	ErrUnknownCategory = errors.New("unknown metric category")
	ErrUnknownMetric   = errors.New("metric key does not belong to the category")
)

// defaultSimilarCount is the sample size of the discovery feature.
const defaultSimilarCount = 3

// CompareService assembles the side-by-side comparison: formatted display
// rows plus one raw-value chart series per metric. It is stateless; the
// explicit name and key lists arrive with every call.
type CompareService interface {
	Compare(ctx context.Context, names []string, category string, metricKeys []string) (*dto.ComparisonResponse, error)
	// SimilarSchools samples unselected schools sharing a state with the
	// selection. Non-deterministic by design; never fails on a small pool.
	SimilarSchools(ctx context.Context, names []string, count int) ([]dto.SimilarSchool, error)
}

type compareService struct {
	repo   *repository.Repository
	loader DatasetEnsurer
	logger *zap.Logger
}

// NewCompareService creates a CompareService instance.
func NewCompareService(repo *repository.Repository, loader DatasetEnsurer, logger *zap.Logger) CompareService {
	return &compareService{repo: repo, loader: loader, logger: logger}
}

func (s *compareService) Compare(ctx context.Context, names []string, category string, metricKeys []string) (*dto.ComparisonResponse, error) {
	names = dedupe(names)
	if len(names) > model.MaxCompareSchools {
		return nil, ErrTooManySchools
	}

	cat, ok := model.CategoryByName(category)
	if !ok {
		return nil, ErrUnknownCategory
	}
	metrics := make([]model.MetricEntry, 0, len(metricKeys))
	for _, key := range metricKeys {
		entry, ok := cat.Entry(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q in %q", ErrUnknownMetric, key, category)
		}
		metrics = append(metrics, entry)
	}

	if err := s.loader.Ensure(ctx); err != nil {
		return nil, err
	}
	schools, err := s.repo.School.ListByNames(ctx, names)
	if err != nil {
		s.logger.Error("comparison lookup failed", zap.Error(err))
		return nil, err
	}
	byName := make(map[string]*model.School, len(schools))
	for i := range schools {
		if _, seen := byName[schools[i].SchoolName]; !seen {
			byName[schools[i].SchoolName] = &schools[i]
		}
	}

	columns := make([]string, 0, len(metrics)+1)
	columns = append(columns, "School")
	for _, m := range metrics {
		columns = append(columns, m.Label)
	}

	rows := make([]dto.ComparisonRow, 0, len(names))
	charts := make([]dto.ChartSeries, len(metrics))
	for i, m := range metrics {
		charts[i] = dto.ChartSeries{Key: m.Key, Label: m.Label, Points: []dto.ChartPoint{}}
	}

	for _, name := range names {
		school, ok := byName[name]
		if !ok {
			// A name that dropped out of the dataset is a lookup miss, not a
			// failure of the whole comparison.
			continue
		}
		cells := make([]string, 0, len(metrics))
		for i, m := range metrics {
			raw := school.MetricValue(m.Key)
			cells = append(cells, FormatValue(raw, m.Kind))
			charts[i].Points = append(charts[i].Points, dto.ChartPoint{
				School: school.SchoolName,
				Value:  raw,
			})
		}
		rows = append(rows, dto.ComparisonRow{School: school.SchoolName, Cells: cells})
	}

	return &dto.ComparisonResponse{
		Category: category,
		Columns:  columns,
		Rows:     rows,
		Charts:   charts,
	}, nil
}

func (s *compareService) SimilarSchools(ctx context.Context, names []string, count int) ([]dto.SimilarSchool, error) {
	if count <= 0 {
		count = defaultSimilarCount
	}
	names = dedupe(names)
	if len(names) == 0 {
		return []dto.SimilarSchool{}, nil
	}

	if err := s.loader.Ensure(ctx); err != nil {
		return nil, err
	}
	selected, err := s.repo.School.ListByNames(ctx, names)
	if err != nil {
		return nil, err
	}

	stateSet := make(map[string]bool)
	var states []string
	for _, school := range selected {
		if school.State == nil || *school.State == "" {
			continue
		}
		if !stateSet[*school.State] {
			stateSet[*school.State] = true
			states = append(states, *school.State)
		}
	}
	if len(states) == 0 {
		return []dto.SimilarSchool{}, nil
	}

	pool, err := s.repo.School.ListByStates(ctx, states, names)
	if err != nil {
		return nil, err
	}

	rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if count > len(pool) {
		count = len(pool)
	}

	out := make([]dto.SimilarSchool, 0, count)
	for _, school := range pool[:count] {
		item := dto.SimilarSchool{SchoolName: school.SchoolName}
		if school.City != nil {
			item.City = *school.City
		}
		if school.State != nil {
			item.State = *school.State
		}
		out = append(out, item)
	}
	return out, nil
}

// dedupe removes repeats while preserving first-seen order.
func dedupe(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
