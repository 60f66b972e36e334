package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/internal/model"
)

// SchoolRepository is the data access interface for the school table.
type SchoolRepository interface {
	// ReplaceAll swaps the entire table for a freshly loaded dataset.
	ReplaceAll(ctx context.Context, schools []model.School) error
	// ListNames returns every school name in dataset (file) order.
	ListNames(ctx context.Context) ([]string, error)
	// SearchNames returns names containing query, case-insensitively, in
	// dataset order.
	SearchNames(ctx context.Context, query string) ([]string, error)
	GetByName(ctx context.Context, name string) (*model.School, error)
	ListByNames(ctx context.Context, names []string) ([]model.School, error)
	// ListByStates returns schools located in any of the given states,
	// excluding the named schools.
	ListByStates(ctx context.Context, states []string, excludeNames []string) ([]model.School, error)
	Count(ctx context.Context) (int64, error)
}

type schoolRepo struct {
	db *gorm.DB
}

// NewSchoolRepo creates a SchoolRepository instance.
func NewSchoolRepo(db *gorm.DB) SchoolRepository {
	return &schoolRepo{db: db}
}

const importBatchSize = 500

func (r *schoolRepo) ReplaceAll(ctx context.Context, schools []model.School) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&model.School{}).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(schools, importBatchSize).Error
	})
}

func (r *schoolRepo) ListNames(ctx context.Context) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).
		Model(&model.School{}).
		Order("row_id").
		Pluck("school_name", &names).Error
	return names, err
}

func (r *schoolRepo) SearchNames(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return r.ListNames(ctx)
	}
	pattern := "%" + escapeLike(strings.ToLower(query)) + "%"
	var names []string
	err := r.db.WithContext(ctx).
		Model(&model.School{}).
		Where("LOWER(school_name) LIKE ? ESCAPE '\\'", pattern).
		Order("row_id").
		Pluck("school_name", &names).Error
	return names, err
}

func (r *schoolRepo) GetByName(ctx context.Context, name string) (*model.School, error) {
	var school model.School
	err := r.db.WithContext(ctx).
		Where("school_name = ?", name).
		Order("row_id").
		First(&school).Error
	if err != nil {
		return nil, err
	}
	return &school, nil
}

func (r *schoolRepo) ListByNames(ctx context.Context, names []string) ([]model.School, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var schools []model.School
	err := r.db.WithContext(ctx).
		Where("school_name IN ?", names).
		Order("row_id").
		Find(&schools).Error
	return schools, err
}

func (r *schoolRepo) ListByStates(ctx context.Context, states []string, excludeNames []string) ([]model.School, error) {
	if len(states) == 0 {
		return nil, nil
	}
	q := r.db.WithContext(ctx).
		Where("state IN ?", states)
	if len(excludeNames) > 0 {
		q = q.Where("school_name NOT IN ?", excludeNames)
	}
	var schools []model.School
	err := q.Order("row_id").Find(&schools).Error
	return schools, err
}

func (r *schoolRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.School{}).Count(&n).Error
	return n, err
}

// escapeLike escapes LIKE wildcards so the query text is matched literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
